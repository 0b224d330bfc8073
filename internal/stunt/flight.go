package stunt

import "time"

// FlightState is the rider's air/ground state as seen by the tracker.
type FlightState int

const (
	Grounded FlightState = iota
	Airborne
)

// String returns a human-readable state name.
func (s FlightState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Points are the per-category point candidates of one jump.
type Points struct {
	Flip    int
	Airtime int
	Landing int
}

// Total returns the sum of all categories.
func (p Points) Total() int {
	return p.Flip + p.Airtime + p.Landing
}

// JumpSession is the state of one jump from take-off until it is committed
// or discarded.
type JumpSession struct {
	ID                 int
	StartRotation      float64 // degrees at take-off
	CumulativeRotation float64 // signed sum of shortest-angle deltas since take-off
	Airtime            time.Duration
	FlipsCompleted     int
	Pending            Points
	Crashed            bool
	Quality            LandingQuality
	Landing            LandingSample
	TakeoffAt          time.Duration
	TouchdownAt        time.Duration
}

type edge int

const (
	edgeNone edge = iota
	edgeTakeoff
	edgeTouchdown
)

// flightTracker owns the Grounded/Airborne machine and the live session.
type flightTracker struct {
	state        FlightState
	primed       bool
	wasGrounded  bool
	suppressed   bool // current flight was ignored; its touchdown is not a landing
	lastRotation float64
	session      *JumpSession
	nextID       int
}

// observe compares the combined contact signal with the previous tick.
// The first observation only primes the tracker.
func (t *flightTracker) observe(grounded bool) edge {
	if !t.primed {
		t.primed = true
		t.wasGrounded = grounded
		return edgeNone
	}
	prev := t.wasGrounded
	t.wasGrounded = grounded
	switch {
	case prev && !grounded:
		return edgeTakeoff
	case !prev && grounded:
		return edgeTouchdown
	default:
		return edgeNone
	}
}

// begin opens a new session. Callers must have resolved any pending commit.
func (t *flightTracker) begin(now time.Duration, rotation float64) *JumpSession {
	t.nextID++
	t.state = Airborne
	t.suppressed = false
	t.lastRotation = rotation
	t.session = &JumpSession{
		ID:            t.nextID,
		StartRotation: rotation,
		TakeoffAt:     now,
	}
	return t.session
}

// accumulate adds one airborne tick to the live session.
func (t *flightTracker) accumulate(s sample) {
	if t.session == nil {
		return
	}
	t.session.Airtime += s.dt
	t.session.CumulativeRotation += ShortestAngleDelta(t.lastRotation, s.rotation)
	t.lastRotation = s.rotation
}

// land closes the flight and hands the session over. Returns nil when no
// session was open (suppressed or aborted flight).
func (t *flightTracker) land(now time.Duration) *JumpSession {
	t.state = Grounded
	t.suppressed = false
	s := t.session
	t.session = nil
	if s != nil {
		s.TouchdownAt = now
	}
	return s
}

// suppress ignores the current flight until the next touchdown.
func (t *flightTracker) suppress() {
	t.state = Grounded
	t.suppressed = true
	t.session = nil
}
