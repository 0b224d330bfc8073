package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// StuntConfig holds the scoring thresholds and policies of the stunt engine.
type StuntConfig struct {
	Flip        StuntFlip     `yaml:"flip"`
	Airtime     StuntAirtime  `yaml:"airtime"`
	Landing     StuntLanding  `yaml:"landing"`
	Combo       StuntCombo    `yaml:"combo"`
	GracePeriod time.Duration `yaml:"landing_grace_period"` // points stay provisional this long after touchdown
	Policy      StuntPolicy   `yaml:"policy"`
}

// StuntFlip defines flip scoring.
type StuntFlip struct {
	PointsPerFlip int `yaml:"points_per_flip"`
}

// StuntAirtime defines airtime scoring.
type StuntAirtime struct {
	MinAirtime      time.Duration `yaml:"min_airtime"`       // shorter flights earn no airtime points
	Granularity     float64       `yaml:"granularity"`       // buckets per second (2 = half-second buckets)
	PointsPerSecond int           `yaml:"points_per_second"` // applied to the bucketed airtime
}

// StuntLanding defines landing classification thresholds and bonuses.
type StuntLanding struct {
	AngleTolerance  float64       `yaml:"angle_tolerance"`   // degrees from upright; beyond this the landing is a crash
	CleanMinSpeed   float64       `yaml:"clean_min_speed"`   // minimum touchdown speed for a clean landing
	PerfectMinSpeed float64       `yaml:"perfect_min_speed"` // minimum touchdown speed for a perfect landing
	CleanBonus      int           `yaml:"clean_bonus"`
	PerfectBonus    int           `yaml:"perfect_bonus"`
	DualWheelWindow time.Duration `yaml:"dual_wheel_window"` // max gap between wheel contacts to count as a two-wheel landing
}

// StuntCombo defines the combo multiplier.
type StuntCombo struct {
	ResetDelay time.Duration `yaml:"reset_delay"` // streak decays after this long without a commit
	Step       float64       `yaml:"step"`        // multiplier = 1 + (count-1)*step
}

// RoughLandingPolicy decides what a zero-point commit does to the combo.
type RoughLandingPolicy string

const (
	RoughLandingReset RoughLandingPolicy = "reset" // zero-point jump breaks the streak
	RoughLandingHold  RoughLandingPolicy = "hold"  // zero-point jump only fails to extend it
)

// ShortJumpPolicy decides what happens to flip points below the minimum airtime.
type ShortJumpPolicy string

const (
	ShortJumpKeep    ShortJumpPolicy = "keep"
	ShortJumpDiscard ShortJumpPolicy = "discard"
)

// ReentryPolicy decides what a take-off does while the previous jump is
// still inside its grace period.
type ReentryPolicy string

const (
	ReentrySuppress ReentryPolicy = "suppress" // ignore the new flight entirely
	ReentryCommit   ReentryPolicy = "commit"   // commit the pending jump now, then track the new one
	ReentryDiscard  ReentryPolicy = "discard"  // drop the pending jump, then track the new one
)

// StuntPolicy groups the behaviors that are product decisions rather than thresholds.
type StuntPolicy struct {
	RoughLanding   RoughLandingPolicy `yaml:"rough_landing"`
	ShortJumpFlips ShortJumpPolicy    `yaml:"short_jump_flips"`
	Reentry        ReentryPolicy      `yaml:"reentry"`
}

// DefaultStuntConfig returns the stock scoring rules.
func DefaultStuntConfig() StuntConfig {
	return StuntConfig{
		Flip: StuntFlip{
			PointsPerFlip: 250,
		},
		Airtime: StuntAirtime{
			MinAirtime:      300 * time.Millisecond,
			Granularity:     2,
			PointsPerSecond: 50,
		},
		Landing: StuntLanding{
			AngleTolerance:  20,
			CleanMinSpeed:   20,
			PerfectMinSpeed: 46,
			CleanBonus:      100,
			PerfectBonus:    250,
			DualWheelWindow: 200 * time.Millisecond,
		},
		Combo: StuntCombo{
			ResetDelay: 1500 * time.Millisecond,
			Step:       0.5,
		},
		GracePeriod: 750 * time.Millisecond,
		Policy: StuntPolicy{
			RoughLanding:   RoughLandingReset,
			ShortJumpFlips: ShortJumpKeep,
			Reentry:        ReentrySuppress,
		},
	}
}

// Validate checks the thresholds for contradictions.
// All problems are reported together; each wraps ErrInvalid.
func (c StuntConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Landing.AngleTolerance <= 0 {
		fail("landing.angle_tolerance must be > 0, got %g", c.Landing.AngleTolerance)
	}
	if c.Landing.PerfectMinSpeed < c.Landing.CleanMinSpeed {
		fail("landing.perfect_min_speed (%g) must be >= landing.clean_min_speed (%g)",
			c.Landing.PerfectMinSpeed, c.Landing.CleanMinSpeed)
	}
	if c.Landing.CleanMinSpeed < 0 {
		fail("landing.clean_min_speed must be >= 0, got %g", c.Landing.CleanMinSpeed)
	}
	if c.Landing.CleanBonus < 0 || c.Landing.PerfectBonus < 0 {
		fail("landing bonuses must be >= 0")
	}
	if c.Landing.DualWheelWindow < 0 {
		fail("landing.dual_wheel_window must be >= 0, got %s", c.Landing.DualWheelWindow)
	}
	if c.Flip.PointsPerFlip < 0 {
		fail("flip.points_per_flip must be >= 0, got %d", c.Flip.PointsPerFlip)
	}
	if c.Airtime.Granularity <= 0 {
		fail("airtime.granularity must be > 0, got %g", c.Airtime.Granularity)
	}
	if c.Airtime.MinAirtime < 0 {
		fail("airtime.min_airtime must be >= 0, got %s", c.Airtime.MinAirtime)
	}
	if c.Airtime.PointsPerSecond < 0 {
		fail("airtime.points_per_second must be >= 0, got %d", c.Airtime.PointsPerSecond)
	}
	if c.Combo.ResetDelay < 0 {
		fail("combo.reset_delay must be >= 0, got %s", c.Combo.ResetDelay)
	}
	if c.Combo.Step < 0 {
		fail("combo.step must be >= 0, got %g", c.Combo.Step)
	}
	if c.GracePeriod < 0 {
		fail("landing_grace_period must be >= 0, got %s", c.GracePeriod)
	}

	switch c.Policy.RoughLanding {
	case RoughLandingReset, RoughLandingHold:
	default:
		fail("policy.rough_landing: unknown value %q", c.Policy.RoughLanding)
	}
	switch c.Policy.ShortJumpFlips {
	case ShortJumpKeep, ShortJumpDiscard:
	default:
		fail("policy.short_jump_flips: unknown value %q", c.Policy.ShortJumpFlips)
	}
	switch c.Policy.Reentry {
	case ReentrySuppress, ReentryCommit, ReentryDiscard:
	default:
		fail("policy.reentry: unknown value %q", c.Policy.Reentry)
	}

	return errors.Join(errs...)
}
