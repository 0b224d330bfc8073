package stunt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

func TestShortestAngleDelta(t *testing.T) {
	tests := []struct {
		from, to float64
		want     float64
	}{
		{0, 10, 10},
		{10, 0, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{0, -180, 180},
		{180, 0, 180},
		{0, 190, -170},
		{0, 720, 0},
		{-170, 170, -20},
	}

	for _, tt := range tests {
		got := ShortestAngleDelta(tt.from, tt.to)
		assert.InDelta(t, tt.want, got, 1e-9, "ShortestAngleDelta(%g, %g)", tt.from, tt.to)
		assert.Greater(t, got, -180.0)
		assert.LessOrEqual(t, got, 180.0)
	}
}

func TestAngleFromVertical(t *testing.T) {
	assert.InDelta(t, 2, AngleFromVertical(362), 1e-9)
	assert.InDelta(t, 2, AngleFromVertical(-2), 1e-9)
	assert.InDelta(t, 30, AngleFromVertical(750), 1e-9)
	assert.InDelta(t, 180, AngleFromVertical(180), 1e-9)
}

func TestFlipCount(t *testing.T) {
	assert.Equal(t, 0, FlipCount(359.9))
	assert.Equal(t, 1, FlipCount(360))
	assert.Equal(t, 1, FlipCount(-370))
	assert.Equal(t, 2, FlipCount(725))
}

func TestDetectFlipsIsIdempotent(t *testing.T) {
	s := &JumpSession{CumulativeRotation: 370}

	b, ok := detectFlips(s, 250)
	assert.True(t, ok)
	assert.Equal(t, 1, b.count)
	assert.Equal(t, 250, s.Pending.Flip)

	_, ok = detectFlips(s, 250)
	assert.False(t, ok)
	assert.Equal(t, 250, s.Pending.Flip)

	// Rotating back below a full turn never takes a flip away.
	s.CumulativeRotation = 100
	_, ok = detectFlips(s, 250)
	assert.False(t, ok)
	assert.Equal(t, 1, s.FlipsCompleted)

	s.CumulativeRotation = 1100
	b, ok = detectFlips(s, 250)
	assert.True(t, ok)
	assert.Equal(t, 2, b.count)
	assert.Equal(t, "Backflip! x3", b.label())
	assert.Equal(t, 750, s.Pending.Flip)
}

func TestClassifyLanding(t *testing.T) {
	cfg := config.DefaultStuntConfig().Landing

	tests := []struct {
		name  string
		angle float64
		speed float64
		dual  bool
		want  LandingQuality
	}{
		{"tilted beats everything", 30, 80, true, QualityCrash},
		{"perfect", 2, 50, true, QualityPerfect},
		{"perfect at threshold", 20, 46, true, QualityPerfect},
		{"clean", 5, 30, true, QualityClean},
		{"too slow", 5, 10, true, QualityRough},
		{"one wheel", 0, 80, false, QualityRough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := LandingSample{AngleFromVertical: tt.angle, Speed: tt.speed, DualWheelWithinWindow: tt.dual}
			assert.Equal(t, tt.want, classifyLanding(ls, cfg))
		})
	}
}

func TestApplyLandingCrashZeroesPending(t *testing.T) {
	cfg := config.DefaultStuntConfig().Landing
	s := &JumpSession{Pending: Points{Flip: 500, Airtime: 50}}

	applyLanding(s, LandingSample{AngleFromVertical: 45}, QualityCrash, cfg)
	assert.True(t, s.Crashed)
	assert.Equal(t, 0, s.Pending.Total())

	aggregate(s, config.DefaultStuntConfig())
	assert.Equal(t, 0, s.Pending.Total())
}

func TestSampleLandingWindow(t *testing.T) {
	c := NewWheelContacts()
	c.Update(time.Second, false, true)
	c.Update(time.Second+200*time.Millisecond, true, false)

	ls := sampleLanding(sample{rotation: 5, speed: 30}, c, 200*time.Millisecond)
	assert.True(t, ls.DualWheelWithinWindow)
	ls = sampleLanding(sample{rotation: 5, speed: 30}, c, 199*time.Millisecond)
	assert.False(t, ls.DualWheelWithinWindow)

	never := NewWheelContacts()
	never.Update(time.Second, false, true)
	ls = sampleLanding(sample{}, never, time.Hour)
	assert.False(t, ls.DualWheelWithinWindow)
}

func TestBucketAirtime(t *testing.T) {
	assert.Equal(t, 0.5, BucketAirtime(999*time.Millisecond, 2))
	assert.Equal(t, 1.0, BucketAirtime(time.Second, 2))
	assert.Equal(t, 1.25, BucketAirtime(1300*time.Millisecond, 4))
	assert.Equal(t, 0.0, BucketAirtime(time.Second, 0))
}

func TestComboAccumulator(t *testing.T) {
	c := comboAccumulator{step: 0.5, resetDelay: 1500 * time.Millisecond, zeroResets: true}

	got, mult := c.apply(0, 100)
	assert.Equal(t, 100, got)
	assert.Equal(t, 1.0, mult)

	got, mult = c.apply(time.Second, 100)
	assert.Equal(t, 150, got)
	assert.Equal(t, 1.5, mult)

	got, _ = c.apply(2*time.Second, 101)
	assert.Equal(t, 202, got)
	assert.Equal(t, 3, c.state(2*time.Second).Count)

	assert.Equal(t, 0, c.state(3600*time.Millisecond).Count)

	c.apply(4*time.Second, 10)
	got, mult = c.apply(4*time.Second, 0)
	assert.Equal(t, 0, got)
	assert.Equal(t, 1.0, mult)
	assert.Equal(t, 0, c.state(4*time.Second).Count)
}

func TestLedgerNeverDecreases(t *testing.T) {
	l := NewLedger()
	l.add(100)
	l.add(-50)
	l.add(0)
	assert.Equal(t, 100, l.Committed())
}
