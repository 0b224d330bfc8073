package stunt

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

// BucketAirtime rounds airtime down to the nearest 1/granularity second, so
// flights that look the same score the same.
func BucketAirtime(airtime time.Duration, granularity float64) float64 {
	if granularity <= 0 {
		return 0
	}
	return math.Floor(airtime.Seconds()*granularity) / granularity
}

// aggregate fills in airtime points after the landing has been classified.
func aggregate(s *JumpSession, cfg config.StuntConfig) {
	if s.Crashed {
		return
	}
	if s.Airtime < cfg.Airtime.MinAirtime {
		s.Pending.Airtime = 0
		if cfg.Policy.ShortJumpFlips == config.ShortJumpDiscard {
			s.Pending.Flip = 0
		}
		return
	}
	bucketed := BucketAirtime(s.Airtime, cfg.Airtime.Granularity)
	s.Pending.Airtime = int(math.Round(bucketed * float64(cfg.Airtime.PointsPerSecond)))
}

func airtimeLabel(airtime time.Duration, granularity float64) string {
	return fmt.Sprintf("Airtime! (%.1fs)", BucketAirtime(airtime, granularity))
}
