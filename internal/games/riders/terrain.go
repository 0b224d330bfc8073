package riders

import (
	"math"
	"math/rand"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

// segment is one static terrain edge in the physics space.
type segment struct {
	a, b  cp.Vector
	shape *cp.Shape
}

// Terrain generates the track ahead of the bike and retires it behind.
// Heights come from rolling hills plus ramp features (kicker, pit, landing
// slope); difficulty scales hill amplitude, ramp height, and gap width.
type Terrain struct {
	cfg        config.TerrainConfig
	difficulty *config.DifficultyManager
	space      *cp.Space // nil when used without physics
	rng        *rand.Rand
	phase      float64
	offset     float64 // keeps hills continuous after a ramp
	nextRampAt float64
	points     []cp.Vector // increasing x; equal x marks a vertical wall
	segs       []segment
	minY       float64
}

// NewTerrain creates a track starting flat at x=0, y=0.
func NewTerrain(seed int64, cfg config.TerrainConfig, diff *config.DifficultyManager, space *cp.Space) *Terrain {
	t := &Terrain{
		cfg:        cfg,
		difficulty: diff,
		space:      space,
		rng:        rand.New(rand.NewSource(seed)),
	}
	t.phase = t.rng.Float64() * 2 * math.Pi
	// A flat run-up so the rider can settle before the first hill.
	t.appendPoint(cp.Vector{X: -40, Y: 0})
	t.appendPoint(cp.Vector{X: 40, Y: 0})
	t.offset = -diff.Amplitude(cfg.BaseAmplitude, config.Progress{}) * t.hill(40)
	t.nextRampAt = 40 + t.cfg.RampEvery*(0.6+0.4*t.rng.Float64())
	return t
}

// hill is the rolling base profile, without offset.
func (t *Terrain) hill(x float64) float64 {
	p := t.cfg.HillPeriod
	if p <= 0 {
		return 0
	}
	w := 2 * math.Pi / p
	return math.Sin(x*w+t.phase) + 0.4*math.Sin(x*w*2.3+t.phase*1.7)
}

func (t *Terrain) end() cp.Vector {
	return t.points[len(t.points)-1]
}

func (t *Terrain) appendPoint(p cp.Vector) {
	if len(t.points) > 0 {
		a := t.end()
		seg := segment{a: a, b: p}
		if t.space != nil {
			shape := cp.NewSegment(t.space.StaticBody, a, p, 0.1)
			shape.SetFriction(t.cfg.Friction)
			shape.SetElasticity(0)
			shape.SetCollisionType(collisionGround)
			t.space.AddShape(shape)
			seg.shape = shape
		}
		t.segs = append(t.segs, seg)
	}
	t.points = append(t.points, p)
	if p.Y < t.minY {
		t.minY = p.Y
	}
}

// Extend generates terrain until it reaches toX.
func (t *Terrain) Extend(toX float64, progress config.Progress) {
	for t.end().X < toX {
		x := t.end().X
		if x >= t.nextRampAt {
			t.appendRamp(progress)
			continue
		}
		nx := x + t.cfg.SegmentLength
		amp := t.difficulty.Amplitude(t.cfg.BaseAmplitude, progress)
		t.appendPoint(cp.Vector{X: nx, Y: amp*(t.hill(nx)) + t.offset})
	}
}

// appendRamp adds a kicker, a pit of gap width, and a landing slope.
func (t *Terrain) appendRamp(progress config.Progress) {
	start := t.end()
	height := t.difficulty.RampHeight(t.cfg.RampHeight, progress) * (0.8 + 0.4*t.rng.Float64())
	gap := t.difficulty.GapWidth(t.cfg.GapWidth, progress) * (0.8 + 0.4*t.rng.Float64())
	length := t.cfg.RampLength
	step := t.cfg.SegmentLength

	// Kicker: quadratic rise, steepest at the lip.
	for d := step; d <= length+1e-9; d += step {
		f := d / length
		t.appendPoint(cp.Vector{X: start.X + d, Y: start.Y + height*f*f})
	}
	lip := t.end()

	// Pit below the lip.
	pitY := start.Y - height*0.5
	t.appendPoint(cp.Vector{X: lip.X, Y: pitY})
	t.appendPoint(cp.Vector{X: lip.X + gap, Y: pitY})

	// Landing slope from two thirds of the kicker height down to the start level.
	landTop := start.Y + height*0.66
	t.appendPoint(cp.Vector{X: lip.X + gap, Y: landTop})
	landLen := length * 1.5
	for d := step; d <= landLen+1e-9; d += step {
		f := d / landLen
		t.appendPoint(cp.Vector{X: lip.X + gap + d, Y: landTop + (start.Y-landTop)*f})
	}

	end := t.end()
	amp := t.difficulty.Amplitude(t.cfg.BaseAmplitude, progress)
	t.offset = end.Y - amp*t.hill(end.X)
	spacing := t.difficulty.RampSpacing(t.cfg.RampEvery, progress)
	t.nextRampAt = end.X + spacing*(0.6+0.8*t.rng.Float64())
}

// Trim removes terrain that ended before x.
func (t *Terrain) Trim(x float64) {
	n := 0
	for n < len(t.segs) && t.segs[n].b.X < x {
		if t.space != nil && t.segs[n].shape != nil {
			t.space.RemoveShape(t.segs[n].shape)
		}
		n++
	}
	if n == 0 {
		return
	}
	t.segs = append(t.segs[:0], t.segs[n:]...)
	t.points = append(t.points[:0], t.points[n:]...)
}

// HeightAt returns the surface height at x. At a vertical wall the higher
// side wins. Outside the generated range the nearest end is extended flat.
func (t *Terrain) HeightAt(x float64) float64 {
	pts := t.points
	if x <= pts[0].X {
		return pts[0].Y
	}
	if x >= pts[len(pts)-1].X {
		return pts[len(pts)-1].Y
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X > x })
	a, b := pts[i-1], pts[i]
	if x == a.X {
		// Top of a wall when several points share this x.
		y := a.Y
		for j := i - 2; j >= 0 && pts[j].X == x; j-- {
			y = math.Max(y, pts[j].Y)
		}
		return y
	}
	f := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*f
}

// Slope returns the surface gradient dy/dx at x.
func (t *Terrain) Slope(x float64) float64 {
	const h = 0.25
	return (t.HeightAt(x+h) - t.HeightAt(x-h)) / (2 * h)
}

// SetConfig changes generation for terrain not yet generated.
func (t *Terrain) SetConfig(cfg config.TerrainConfig) {
	t.cfg = cfg
}

// Start returns the first generated x.
func (t *Terrain) Start() float64 {
	return t.points[0].X
}

// End returns the last generated x.
func (t *Terrain) End() float64 {
	return t.end().X
}

// MinY returns the lowest point ever generated.
func (t *Terrain) MinY() float64 {
	return t.minY
}

// Segments returns the number of live terrain edges.
func (t *Terrain) Segments() int {
	return len(t.segs)
}
