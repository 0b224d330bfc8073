package stunt

import (
	"fmt"
	"math"
	"time"
)

// ComboState is a snapshot of the streak.
type ComboState struct {
	Count         int
	DecayDeadline time.Duration
}

// comboAccumulator tracks consecutive successful jumps. Decay is lazy: every
// read first drops an expired streak.
type comboAccumulator struct {
	count      int
	deadline   time.Duration
	step       float64
	resetDelay time.Duration
	zeroResets bool
}

func (c *comboAccumulator) decay(now time.Duration) {
	if c.count > 0 && now > c.deadline {
		c.count = 0
	}
}

func (c *comboAccumulator) state(now time.Duration) ComboState {
	c.decay(now)
	return ComboState{Count: c.count, DecayDeadline: c.deadline}
}

func (c *comboAccumulator) multiplier() float64 {
	if c.count <= 1 {
		return 1
	}
	return 1 + float64(c.count-1)*c.step
}

// apply scales a commit by the streak. Zero points never extend the streak
// and break it when zeroResets is set.
func (c *comboAccumulator) apply(now time.Duration, points int) (awarded int, mult float64) {
	c.decay(now)
	if points <= 0 {
		if c.zeroResets {
			c.count = 0
		}
		return 0, 1
	}
	c.count++
	c.deadline = now + c.resetDelay
	mult = c.multiplier()
	return int(math.Round(float64(points) * mult)), mult
}

func (c *comboAccumulator) reset() {
	c.count = 0
	c.deadline = 0
}

func comboLabel(count int) string {
	return fmt.Sprintf("Combo! x%d", count)
}
