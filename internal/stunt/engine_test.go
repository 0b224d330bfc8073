package stunt

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

const dt = 1.0 / 64

var tickDur = time.Second / 64

// graceTicks is the default grace period expressed in ticks.
const graceTicks = 48

type recorder struct {
	events  []Event
	scores  []int
	reports []JumpReport
}

func (r *recorder) OnStuntEvent(ev Event)       { r.events = append(r.events, ev) }
func (r *recorder) OnScoreChanged(total int)    { r.scores = append(r.scores, total) }
func (r *recorder) OnJumpResolved(j JumpReport) { r.reports = append(r.reports, j) }

func (r *recorder) byCategory(c Category) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Category == c {
			out = append(out, ev)
		}
	}
	return out
}

// rig drives an engine with fixed 1/64 s frames.
type rig struct {
	t   *testing.T
	e   *Engine
	rec *recorder
}

func newRig(t *testing.T, mutate func(*config.StuntConfig)) *rig {
	t.Helper()
	cfg := config.DefaultStuntConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &recorder{}
	e, err := New(cfg, nil, WithListener(rec))
	require.NoError(t, err)

	r := &rig{t: t, e: e, rec: rec}
	r.ground(2, 0, 30)
	return r
}

// ground feeds n frames with both wheels down.
func (r *rig) ground(n int, rot, speed float64) {
	for i := 0; i < n; i++ {
		r.e.Tick(Frame{RotationDeg: rot, Speed: speed, DT: dt, FrontGrounded: true, BackGrounded: true})
	}
}

// fly feeds a take-off frame at rotation from, then n airborne frames
// rotating linearly to rotation to.
func (r *rig) fly(n int, from, to float64) {
	r.e.Tick(Frame{RotationDeg: from, Speed: 30, DT: dt})
	for i := 1; i <= n; i++ {
		rot := from + (to-from)*float64(i)/float64(n)
		r.e.Tick(Frame{RotationDeg: rot, Speed: 30, DT: dt})
	}
}

// land feeds one touchdown frame with both wheels down.
func (r *rig) land(rot, speed float64) {
	r.ground(1, rot, speed)
}

// cleanJump flies a short jump and lands clean (100 points, no airtime bonus).
func (r *rig) cleanJump() {
	r.fly(14, 0, 0)
	r.land(0, 30)
}

func (r *rig) committed() int {
	return r.e.Ledger().Committed()
}

func TestPerfectFlipCommitsAfterGracePeriod(t *testing.T) {
	r := newRig(t, nil)

	r.fly(40, 0, 370)
	require.Len(t, r.rec.byCategory(CategoryFlip), 1)
	flip := r.rec.byCategory(CategoryFlip)[0]
	assert.Equal(t, "Backflip! x1", flip.Label)
	assert.Equal(t, 250, flip.Points)

	r.land(362, 50)
	s, ok := r.e.Session()
	require.True(t, ok)
	assert.Equal(t, QualityPerfect, s.Quality)
	assert.Equal(t, 1, s.FlipsCompleted)
	assert.InDelta(t, 362, s.CumulativeRotation, 1e-9)
	assert.Equal(t, 41*tickDur, s.Airtime)
	assert.Equal(t, Points{Flip: 250, Airtime: 25, Landing: 250}, s.Pending)
	assert.Equal(t, CommitPending, r.e.CommitState())

	r.ground(graceTicks-1, 0, 30)
	assert.Equal(t, 0, r.committed(), "points visible before grace period elapsed")
	assert.Empty(t, r.rec.scores)

	r.ground(1, 0, 30)
	assert.Equal(t, 525, r.committed())
	assert.Equal(t, []int{525}, r.rec.scores)
	assert.Equal(t, 1, r.e.CurrentComboCount())
	assert.Equal(t, CommitIdle, r.e.CommitState())

	require.Len(t, r.rec.reports, 1)
	rep := r.rec.reports[0]
	assert.Equal(t, OutcomeCommitted, rep.Outcome)
	assert.Equal(t, 525, rep.Awarded)
	assert.Equal(t, 1.0, rep.Multiplier)

	landing := r.rec.byCategory(CategoryLanding)
	require.Len(t, landing, 1)
	assert.Equal(t, "Perfect Landing!", landing[0].Label)
	airtime := r.rec.byCategory(CategoryAirtime)
	require.Len(t, airtime, 1)
	assert.Equal(t, "Airtime! (0.5s)", airtime[0].Label)
	assert.Empty(t, r.rec.byCategory(CategoryCombo))
}

func TestShortJumpEarnsNoAirtime(t *testing.T) {
	r := newRig(t, nil)

	r.fly(11, 0, 0)
	r.land(0, 30)
	s, ok := r.e.Session()
	require.True(t, ok)
	assert.Less(t, s.Airtime, 300*time.Millisecond)
	assert.Equal(t, QualityClean, s.Quality)
	assert.Equal(t, Points{Landing: 100}, s.Pending)

	r.ground(graceTicks, 0, 30)
	assert.Equal(t, 100, r.committed())
	assert.Empty(t, r.rec.byCategory(CategoryAirtime))
}

func TestShortJumpFlipPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy config.ShortJumpPolicy
		want   int
	}{
		{"keep", config.ShortJumpKeep, 350},
		{"discard", config.ShortJumpDiscard, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, func(c *config.StuntConfig) { c.Policy.ShortJumpFlips = tt.policy })
			r.fly(10, 0, 370)
			r.land(370, 30)
			r.ground(graceTicks, 0, 30)
			assert.Equal(t, tt.want, r.committed())
		})
	}
}

func TestTiltedLandingCrashes(t *testing.T) {
	r := newRig(t, nil)

	r.cleanJump()
	r.ground(graceTicks, 0, 30)
	require.Equal(t, 100, r.committed())
	require.Equal(t, 1, r.e.CurrentComboCount())

	r.fly(30, 0, 750)
	assert.Len(t, r.rec.byCategory(CategoryFlip), 2)
	r.land(750, 50)

	s, ok := r.e.Session()
	require.True(t, ok)
	assert.True(t, s.Crashed)
	assert.Equal(t, QualityCrash, s.Quality)
	assert.Equal(t, 2, s.FlipsCompleted)
	assert.Equal(t, Points{}, s.Pending)

	r.ground(graceTicks-1, 0, 30)
	assert.Equal(t, 1, r.e.CurrentComboCount(), "streak should still be alive before the crash commits")

	r.ground(1, 0, 30)
	assert.Equal(t, 100, r.committed())
	assert.Equal(t, 0, r.e.CurrentComboCount())
}

func TestCrashDuringGraceDiscardsPending(t *testing.T) {
	r := newRig(t, nil)

	r.cleanJump()
	r.ground(19, 0, 30)
	require.Equal(t, CommitPending, r.e.CommitState())

	r.e.Crash()
	assert.Equal(t, CommitIdle, r.e.CommitState())
	r.ground(2*graceTicks, 0, 30)

	assert.Equal(t, 0, r.committed())
	assert.Empty(t, r.rec.scores)
	require.Len(t, r.rec.reports, 1)
	assert.Equal(t, OutcomeDiscarded, r.rec.reports[0].Outcome)
	assert.Equal(t, "crash", r.rec.reports[0].Reason)
	assert.Equal(t, 100, r.rec.reports[0].Pending.Total())
}

func TestCrashInAirAbandonsJump(t *testing.T) {
	r := newRig(t, nil)

	r.fly(30, 0, 400)
	require.Equal(t, Airborne, r.e.State())
	r.e.Crash()
	assert.Equal(t, Grounded, r.e.State())

	r.land(0, 50)
	r.ground(2*graceTicks, 0, 30)

	assert.Equal(t, 0, r.committed())
	require.Len(t, r.rec.reports, 1)
	assert.Equal(t, OutcomeDiscarded, r.rec.reports[0].Outcome)
	assert.Equal(t, QualityCrash, r.rec.reports[0].Quality)
}

func TestCrashWithNothingInFlightIsNoop(t *testing.T) {
	r := newRig(t, nil)
	r.e.Crash()
	assert.Empty(t, r.rec.reports)
	assert.Equal(t, 0, r.committed())
}

func TestComboChainsConsecutiveJumps(t *testing.T) {
	r := newRig(t, nil)

	r.fly(20, 0, 0)
	r.land(0, 30)
	first := r.e.Now()
	r.ground(graceTicks, 0, 30)
	require.Equal(t, 100, r.committed())

	r.fly(14, 0, 0)
	r.land(0, 30)
	assert.Equal(t, time.Second, r.e.Now()-first)
	r.ground(graceTicks, 0, 30)

	assert.Equal(t, 2, r.e.CurrentComboCount())
	assert.Equal(t, 250, r.committed())

	combo := r.rec.byCategory(CategoryCombo)
	require.Len(t, combo, 1)
	assert.Equal(t, "Combo! x2", combo[0].Label)
	assert.Equal(t, 50, combo[0].Points)
	require.Len(t, r.rec.reports, 2)
	assert.Equal(t, 1.5, r.rec.reports[1].Multiplier)
}

func TestComboDecaysAfterResetDelay(t *testing.T) {
	r := newRig(t, nil)

	r.cleanJump()
	r.ground(graceTicks, 0, 30)
	require.Equal(t, 1, r.e.CurrentComboCount())

	r.ground(96, 0, 30) // exactly 1.5s: still alive
	assert.Equal(t, 1, r.e.CurrentComboCount())
	r.ground(1, 0, 30)
	assert.Equal(t, 0, r.e.CurrentComboCount())

	r.cleanJump()
	r.ground(graceTicks, 0, 30)
	assert.Equal(t, 200, r.committed())
	assert.Equal(t, 1, r.e.CurrentComboCount())
}

func TestRoughLandingPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy config.RoughLandingPolicy
		want   int
	}{
		{"reset", config.RoughLandingReset, 0},
		{"hold", config.RoughLandingHold, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, func(c *config.StuntConfig) { c.Policy.RoughLanding = tt.policy })
			r.cleanJump()
			r.ground(graceTicks, 0, 30)

			r.fly(5, 0, 0)
			r.land(0, 5)
			s, _ := r.e.Session()
			require.Equal(t, QualityRough, s.Quality)
			r.ground(graceTicks, 0, 30)

			assert.Equal(t, tt.want, r.e.CurrentComboCount())
			assert.Equal(t, 100, r.committed())
		})
	}
}

func TestReentryPolicy(t *testing.T) {
	t.Run("suppress", func(t *testing.T) {
		r := newRig(t, nil)
		r.cleanJump()
		r.ground(10, 0, 30)

		r.fly(60, 0, 720)
		assert.Equal(t, Grounded, r.e.State())
		assert.Empty(t, r.rec.byCategory(CategoryFlip))
		assert.Equal(t, 100, r.committed(), "pending jump still commits during the ignored flight")

		r.land(0, 50)
		assert.Equal(t, CommitIdle, r.e.CommitState())
		r.ground(2*graceTicks, 0, 30)
		assert.Equal(t, 100, r.committed())
		assert.Len(t, r.rec.reports, 1)
	})

	t.Run("commit", func(t *testing.T) {
		r := newRig(t, func(c *config.StuntConfig) { c.Policy.Reentry = config.ReentryCommit })
		r.cleanJump()
		r.ground(10, 0, 30)

		r.fly(0, 0, 0)
		assert.Equal(t, 100, r.committed())
		assert.Equal(t, Airborne, r.e.State())

		r.fly(14, 0, 0)
		r.land(0, 30)
		r.ground(graceTicks, 0, 30)
		assert.Equal(t, 250, r.committed())
	})

	t.Run("discard", func(t *testing.T) {
		r := newRig(t, func(c *config.StuntConfig) { c.Policy.Reentry = config.ReentryDiscard })
		r.cleanJump()
		r.ground(10, 0, 30)

		r.fly(0, 0, 0)
		assert.Equal(t, 0, r.committed())
		require.Len(t, r.rec.reports, 1)
		assert.Equal(t, "reentry", r.rec.reports[0].Reason)
		assert.Equal(t, Airborne, r.e.State())
	})
}

func TestFlipCountIndependentOfTickRate(t *testing.T) {
	for _, n := range []int{10, 37, 100, 400} {
		r := newRig(t, nil)
		r.fly(n, 0, 725)
		s, ok := r.e.Session()
		require.True(t, ok)
		assert.Equal(t, 2, s.FlipsCompleted, "n=%d", n)
		assert.Equal(t, 500, s.Pending.Flip, "n=%d", n)
	}
}

func TestFrontflipLabel(t *testing.T) {
	r := newRig(t, nil)
	r.fly(20, 0, -365)
	flips := r.rec.byCategory(CategoryFlip)
	require.Len(t, flips, 1)
	assert.Equal(t, "Frontflip! x1", flips[0].Label)
}

func TestWrappedRotationInputs(t *testing.T) {
	r := newRig(t, nil)

	// Physics reports angles wrapped into [0, 360).
	r.fly(0, 0, 0)
	for i := 1; i <= 40; i++ {
		rot := math.Mod(float64(i)*10, 360)
		r.e.Tick(Frame{RotationDeg: rot, Speed: 30, DT: dt})
	}
	s, _ := r.e.Session()
	assert.InDelta(t, 400, s.CumulativeRotation, 1e-9)
	assert.Equal(t, 1, s.FlipsCompleted)
}

func TestInvalidFrameValues(t *testing.T) {
	r := newRig(t, nil)
	start := r.e.Now()

	r.e.Tick(Frame{DT: math.NaN(), FrontGrounded: true, BackGrounded: true})
	r.e.Tick(Frame{DT: -1, FrontGrounded: true, BackGrounded: true})
	assert.Equal(t, start, r.e.Now())

	r.fly(10, 0, 100)
	r.e.Tick(Frame{RotationDeg: math.NaN(), Speed: math.NaN(), DT: dt})
	s, _ := r.e.Session()
	assert.InDelta(t, 100, s.CumulativeRotation, 1e-9)
	assert.Equal(t, 11*tickDur, s.Airtime)

	r.e.Tick(Frame{RotationDeg: 110, Speed: -5, DT: math.Inf(1)})
	s, _ = r.e.Session()
	assert.InDelta(t, 110, s.CumulativeRotation, 1e-9)
	assert.Equal(t, 11*tickDur, s.Airtime)
}

func TestInjectedContactProvider(t *testing.T) {
	contacts := NewWheelContacts()
	rec := &recorder{}
	e, err := New(config.DefaultStuntConfig(), nil, WithListener(rec), WithContactProvider(contacts))
	require.NoError(t, err)

	step := func(rot, speed float64, front, back bool) {
		contacts.Update(e.Now()+tickDur, front, back)
		e.Tick(Frame{RotationDeg: rot, Speed: speed, DT: dt})
	}

	step(0, 50, true, true)
	step(0, 50, true, true)
	for i := 0; i < 30; i++ {
		step(0, 50, false, false)
	}
	// Back wheel lands alone; the front wheel's last contact predates take-off.
	step(0, 50, false, true)

	s, ok := e.Session()
	require.True(t, ok)
	assert.False(t, s.Landing.DualWheelWithinWindow)
	assert.Equal(t, QualityRough, s.Quality)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultStuntConfig()
	cfg.Landing.PerfectMinSpeed = 1
	cfg.Landing.CleanMinSpeed = 10

	_, err := New(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestReconfigure(t *testing.T) {
	r := newRig(t, nil)

	bad := config.DefaultStuntConfig()
	bad.Policy.Reentry = "queue"
	require.ErrorIs(t, r.e.Reconfigure(bad), config.ErrInvalid)
	assert.Equal(t, config.ReentrySuppress, r.e.Config().Policy.Reentry)

	good := config.DefaultStuntConfig()
	good.Landing.CleanBonus = 40
	require.NoError(t, r.e.Reconfigure(good))

	r.cleanJump()
	r.ground(graceTicks, 0, 30)
	assert.Equal(t, 40, r.committed())
}

func TestSharedLedgerAccumulates(t *testing.T) {
	ledger := NewLedger()
	for i := 0; i < 2; i++ {
		e, err := New(config.DefaultStuntConfig(), ledger)
		require.NoError(t, err)
		r := &rig{t: t, e: e, rec: &recorder{}}
		r.ground(2, 0, 30)
		r.cleanJump()
		r.ground(graceTicks, 0, 30)
	}
	assert.Equal(t, 200, ledger.Committed())
}
