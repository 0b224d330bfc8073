package stunt

import (
	"fmt"
	"math"
)

// FlipDirection is the rotation sense of a flip.
type FlipDirection int

const (
	Backflip  FlipDirection = iota // positive (counter-clockwise) rotation
	Frontflip                      // negative rotation
)

// String returns the trick name.
func (d FlipDirection) String() string {
	if d == Frontflip {
		return "Frontflip"
	}
	return "Backflip"
}

// FlipCount returns the number of full rotations contained in a cumulative rotation.
func FlipCount(cumulativeRotation float64) int {
	return int(math.Floor(math.Abs(cumulativeRotation) / 360))
}

// flipBatch is a group of flips first credited on the same tick.
type flipBatch struct {
	direction FlipDirection
	count     int // flips in this batch
	total     int // flips credited so far this session
	points    int
}

func (b flipBatch) label() string {
	return fmt.Sprintf("%s! x%d", b.direction, b.total)
}

// detectFlips credits any newly completed rotations to the session.
// Repeated calls at the same rotation credit nothing.
func detectFlips(s *JumpSession, pointsPerFlip int) (flipBatch, bool) {
	flips := FlipCount(s.CumulativeRotation)
	if flips <= s.FlipsCompleted {
		return flipBatch{}, false
	}

	b := flipBatch{
		direction: Backflip,
		count:     flips - s.FlipsCompleted,
		total:     flips,
	}
	if s.CumulativeRotation < 0 {
		b.direction = Frontflip
	}
	b.points = b.count * pointsPerFlip

	s.Pending.Flip += b.points
	s.FlipsCompleted = flips
	return b, true
}
