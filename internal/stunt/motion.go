package stunt

import (
	"math"
	"time"
)

// Wheel identifies one of the two bike wheels.
type Wheel int

const (
	WheelFront Wheel = iota
	WheelBack
)

// String returns a human-readable wheel name.
func (w Wheel) String() string {
	switch w {
	case WheelFront:
		return "front"
	case WheelBack:
		return "back"
	default:
		return "unknown"
	}
}

// neverContacted is returned by LastContact for a wheel that has not touched
// the ground yet. Far enough in the past that any window check fails, small
// enough that subtracting two of them cannot overflow.
const neverContacted = time.Duration(math.MinInt64 / 4)

// GroundContactProvider reports wheel contact for the current tick.
// Timestamps are on the engine's clock (see Engine.Now).
type GroundContactProvider interface {
	Grounded(w Wheel) bool
	LastContact(w Wheel) time.Duration
}

// WheelContacts is a GroundContactProvider fed with one boolean pair per tick.
// The engine uses one internally when no provider is injected.
type WheelContacts struct {
	grounded [2]bool
	last     [2]time.Duration
}

// NewWheelContacts creates a provider with both wheels never grounded.
func NewWheelContacts() *WheelContacts {
	return &WheelContacts{last: [2]time.Duration{neverContacted, neverContacted}}
}

// Update records the contact state observed at now.
func (c *WheelContacts) Update(now time.Duration, front, back bool) {
	c.grounded[WheelFront] = front
	c.grounded[WheelBack] = back
	if front {
		c.last[WheelFront] = now
	}
	if back {
		c.last[WheelBack] = now
	}
}

// Grounded reports whether the wheel touched the ground on the last update.
func (c *WheelContacts) Grounded(w Wheel) bool {
	if w != WheelFront && w != WheelBack {
		return false
	}
	return c.grounded[w]
}

// LastContact returns the last time the wheel reported contact.
func (c *WheelContacts) LastContact(w Wheel) time.Duration {
	if w != WheelFront && w != WheelBack {
		return neverContacted
	}
	return c.last[w]
}

// Frame is the raw per-tick input from the physics collaborator.
type Frame struct {
	RotationDeg   float64 // body rotation, degrees, counter-clockwise positive
	Speed         float64 // linear velocity magnitude
	DT            float64 // seconds since the previous frame
	FrontGrounded bool    // ignored when a GroundContactProvider is injected
	BackGrounded  bool
}

// sample is a sanitized Frame combined with the contact state.
type sample struct {
	rotation float64
	speed    float64
	dt       time.Duration
	front    bool
	back     bool
}

func (s sample) grounded() bool {
	return s.front || s.back
}

// sampler turns raw frames into samples. A NaN or infinite rotation repeats
// the last valid angle so it contributes no delta.
type sampler struct {
	rotation float64
}

func (sm *sampler) read(f Frame, dt time.Duration, contacts GroundContactProvider) sample {
	if !math.IsNaN(f.RotationDeg) && !math.IsInf(f.RotationDeg, 0) {
		sm.rotation = f.RotationDeg
	}
	speed := f.Speed
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		speed = 0
	}
	return sample{
		rotation: sm.rotation,
		speed:    speed,
		dt:       dt,
		front:    contacts.Grounded(WheelFront),
		back:     contacts.Grounded(WheelBack),
	}
}

// secondsToDuration converts a frame delta to clock time, clamping invalid or
// negative values to zero.
func secondsToDuration(dt float64) time.Duration {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0
	}
	return time.Duration(math.Round(dt * float64(time.Second)))
}

// ShortestAngleDelta returns the signed difference to-from wrapped into
// (-180, 180] degrees.
func ShortestAngleDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if math.IsNaN(d) {
		return 0
	}
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// AngleFromVertical returns how far a body rotation is from upright,
// in unsigned degrees within [0, 180].
func AngleFromVertical(rotationDeg float64) float64 {
	return math.Abs(ShortestAngleDelta(0, rotationDeg))
}
