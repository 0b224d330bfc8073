package riders

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/pixel-riders/internal/config"
	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/stunt"
)

const (
	collisionGround cp.CollisionType = iota + 1
	collisionWheel
	collisionHead
	collisionChassis
)

// bikeGroup keeps the bike's own shapes from colliding with each other.
const bikeGroup uint = 1

const (
	chassisHeight   = 1.0
	axleDrop        = 1.3 // wheel centers below the chassis center
	headRadius      = 0.5
	physicsSubsteps = 4
)

var headOffset = cp.Vector{X: -0.4, Y: 1.6}

// World is the physics collaborator: a Chipmunk space holding the bike and
// the terrain. It reports pose and per-wheel ground contact each tick.
type World struct {
	cfg     config.BikeConfig
	space   *cp.Space
	terrain *Terrain
	chassis *cp.Body
	wheels  [2]*cp.Body // indexed by stunt.Wheel
	shapes  map[*cp.Shape]stunt.Wheel
	touched [2]bool
	headHit bool
	startX  float64
}

// NewWorld builds the space, the terrain, and a bike resting at the start.
func NewWorld(seed int64, cfg config.RidersConfig, diff *config.DifficultyManager) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -cfg.Bike.Gravity})

	w := &World{
		cfg:    cfg.Bike,
		space:  space,
		shapes: make(map[*cp.Shape]stunt.Wheel, 2),
	}
	w.terrain = NewTerrain(seed, cfg.Terrain, diff, space)
	w.terrain.Extend(cfg.Terrain.Lookahead, config.Progress{})
	w.buildBike(0)
	w.setupHandlers()
	return w
}

func (w *World) buildBike(x float64) {
	b := w.cfg
	groundY := w.terrain.HeightAt(x)
	centerY := groundY + b.WheelRadius + axleDrop + 0.05
	filter := cp.NewShapeFilter(bikeGroup, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)

	chassisW := b.WheelBase + 0.4
	w.chassis = w.space.AddBody(cp.NewBody(b.ChassisMass, cp.MomentForBox(b.ChassisMass, chassisW, chassisHeight)))
	w.chassis.SetPosition(cp.Vector{X: x, Y: centerY})

	box := w.space.AddShape(cp.NewBox(w.chassis, chassisW, chassisHeight, 0.1))
	box.SetFriction(0.6)
	box.SetFilter(filter)
	box.SetCollisionType(collisionChassis)

	head := w.space.AddShape(cp.NewCircle(w.chassis, headRadius, headOffset))
	head.SetFriction(0.6)
	head.SetFilter(filter)
	head.SetCollisionType(collisionHead)

	axles := [2]float64{b.WheelBase / 2, -b.WheelBase / 2} // front, back
	for i, dx := range axles {
		pos := cp.Vector{X: x + dx, Y: centerY - axleDrop}
		wheel := w.space.AddBody(cp.NewBody(b.WheelMass, cp.MomentForCircle(b.WheelMass, 0, b.WheelRadius, cp.Vector{})))
		wheel.SetPosition(pos)

		shape := w.space.AddShape(cp.NewCircle(wheel, b.WheelRadius, cp.Vector{}))
		shape.SetFriction(b.WheelFriction)
		shape.SetElasticity(0.1)
		shape.SetFilter(filter)
		shape.SetCollisionType(collisionWheel)

		w.space.AddConstraint(cp.NewPivotJoint(w.chassis, wheel, pos))
		w.wheels[i] = wheel
		w.shapes[shape] = stunt.Wheel(i)
	}

	for _, body := range w.bodies() {
		body.SetVelocity(b.StartSpeed, 0)
	}
	w.startX = x
}

func (w *World) bodies() []*cp.Body {
	return []*cp.Body{w.chassis, w.wheels[stunt.WheelFront], w.wheels[stunt.WheelBack]}
}

func (w *World) setupHandlers() {
	wheelGround := w.space.NewCollisionHandler(collisionWheel, collisionGround)
	wheelGround.UserData = w
	wheelGround.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok {
			return true
		}
		a, b := arb.Shapes()
		if wheel, ok := world.shapes[a]; ok {
			world.touched[wheel] = true
		} else if wheel, ok := world.shapes[b]; ok {
			world.touched[wheel] = true
		}
		return true
	}

	headGround := w.space.NewCollisionHandler(collisionHead, collisionGround)
	headGround.UserData = w
	headGround.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if world, ok := userData.(*World); ok {
			world.headHit = true
		}
		return true
	}
}

// Controls applies one tick of rider input.
func (w *World) Controls(in core.InputFrame, dt float64) {
	b := w.cfg
	back := w.wheels[stunt.WheelBack]
	front := w.wheels[stunt.WheelFront]

	// Clockwise spin (negative) drives the bike to the right.
	if in.Has(core.ActionThrottle) {
		spin := back.AngularVelocity() - b.Acceleration*dt
		back.SetAngularVelocity(math.Max(spin, -b.MaxWheelSpin))
	}
	if in.Has(core.ActionBrake) {
		k := math.Max(0, 1-b.BrakeDamping*dt)
		back.SetAngularVelocity(back.AngularVelocity() * k)
		front.SetAngularVelocity(front.AngularVelocity() * k)
	}

	lean := 0.0
	if in.Has(core.ActionLeanBack) {
		lean += 1
	}
	if in.Has(core.ActionLeanForward) {
		lean -= 1
	}
	if lean != 0 {
		spin := w.chassis.AngularVelocity() + lean*b.LeanRate*dt
		if math.Abs(spin) <= b.MaxLeanSpin || math.Abs(spin) < math.Abs(w.chassis.AngularVelocity()) {
			w.chassis.SetAngularVelocity(spin)
		}
	}
}

// Step advances the physics by dt and refreshes wheel contact.
func (w *World) Step(dt float64) {
	w.touched = [2]bool{}
	sub := dt / physicsSubsteps
	for i := 0; i < physicsSubsteps; i++ {
		w.space.Step(sub)
	}
}

// Grounded reports whether a wheel touched the terrain during the last step
// or hovers within the ground margin of it.
func (w *World) Grounded(wheel stunt.Wheel) bool {
	if wheel != stunt.WheelFront && wheel != stunt.WheelBack {
		return false
	}
	if w.touched[wheel] {
		return true
	}
	p := w.wheels[wheel].Position()
	gap := p.Y - w.cfg.WheelRadius - w.terrain.HeightAt(p.X)
	return gap <= w.cfg.GroundMargin
}

// Frame samples the bike for the stunt engine.
func (w *World) Frame(dt float64) stunt.Frame {
	return stunt.Frame{
		RotationDeg:   w.chassis.Angle() * 180 / math.Pi,
		Speed:         w.chassis.Velocity().Length(),
		DT:            dt,
		FrontGrounded: w.Grounded(stunt.WheelFront),
		BackGrounded:  w.Grounded(stunt.WheelBack),
	}
}

// Crashed reports whether the rider's head hit the ground or the bike fell
// below the track.
func (w *World) Crashed() bool {
	if w.headHit {
		return true
	}
	return w.chassis.Position().Y < w.terrain.MinY()-40
}

// Position returns the chassis center.
func (w *World) Position() cp.Vector {
	return w.chassis.Position()
}

// Distance returns how far the bike has travelled from the start.
func (w *World) Distance() float64 {
	return w.chassis.Position().X - w.startX
}

// Terrain returns the track.
func (w *World) Terrain() *Terrain {
	return w.terrain
}

// Advance extends the track ahead of the bike and drops it behind.
func (w *World) Advance(progress config.Progress) {
	x := w.chassis.Position().X
	w.terrain.Extend(x+w.terrain.cfg.Lookahead, progress)
	w.terrain.Trim(x - w.terrain.cfg.Keepbehind)
}

// SetBike swaps the control tuning. Body geometry stays as built.
func (w *World) SetBike(cfg config.BikeConfig) {
	w.cfg.Acceleration = cfg.Acceleration
	w.cfg.MaxWheelSpin = cfg.MaxWheelSpin
	w.cfg.BrakeDamping = cfg.BrakeDamping
	w.cfg.LeanRate = cfg.LeanRate
	w.cfg.MaxLeanSpin = cfg.MaxLeanSpin
	w.cfg.GroundMargin = cfg.GroundMargin
	w.space.SetGravity(cp.Vector{X: 0, Y: -cfg.Gravity})
}

// pose is the renderable state of the bike.
type pose struct {
	chassis    cp.Vector
	angle      float64
	wheels     [2]cp.Vector
	head       cp.Vector
	wheelAngle float64
}

func (w *World) pose() pose {
	return pose{
		chassis:    w.chassis.Position(),
		angle:      w.chassis.Angle(),
		wheels:     [2]cp.Vector{w.wheels[stunt.WheelFront].Position(), w.wheels[stunt.WheelBack].Position()},
		head:       w.chassis.LocalToWorld(headOffset),
		wheelAngle: w.wheels[stunt.WheelBack].Angle(),
	}
}
