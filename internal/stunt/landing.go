package stunt

import (
	"time"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

// LandingQuality is the classification of a touchdown.
type LandingQuality int

const (
	QualityNone LandingQuality = iota // not landed yet
	QualityCrash
	QualityRough
	QualityClean
	QualityPerfect
)

// String returns a lowercase quality name, as stored in the jump log.
func (q LandingQuality) String() string {
	switch q {
	case QualityCrash:
		return "crash"
	case QualityRough:
		return "rough"
	case QualityClean:
		return "clean"
	case QualityPerfect:
		return "perfect"
	default:
		return "none"
	}
}

// LandingSample describes the instant of touchdown.
type LandingSample struct {
	AngleFromVertical     float64 // unsigned degrees, 0 = upright
	Speed                 float64
	FrontContactAt        time.Duration
	BackContactAt         time.Duration
	DualWheelWithinWindow bool
}

func sampleLanding(s sample, contacts GroundContactProvider, window time.Duration) LandingSample {
	ls := LandingSample{
		AngleFromVertical: AngleFromVertical(s.rotation),
		Speed:             s.speed,
		FrontContactAt:    contacts.LastContact(WheelFront),
		BackContactAt:     contacts.LastContact(WheelBack),
	}
	gap := ls.FrontContactAt - ls.BackContactAt
	if gap < 0 {
		gap = -gap
	}
	ls.DualWheelWithinWindow = gap <= window
	return ls
}

// classifyLanding applies the landing policy; the first matching rule wins.
func classifyLanding(ls LandingSample, cfg config.StuntLanding) LandingQuality {
	switch {
	case ls.AngleFromVertical > cfg.AngleTolerance:
		return QualityCrash
	case ls.DualWheelWithinWindow && ls.Speed >= cfg.PerfectMinSpeed:
		return QualityPerfect
	case ls.DualWheelWithinWindow && ls.Speed >= cfg.CleanMinSpeed:
		return QualityClean
	default:
		return QualityRough
	}
}

// applyLanding records the quality on the session and sets the landing bonus.
// A crash voids everything earned in the air.
func applyLanding(s *JumpSession, ls LandingSample, q LandingQuality, cfg config.StuntLanding) {
	s.Landing = ls
	s.Quality = q
	switch q {
	case QualityCrash:
		s.Crashed = true
		s.Pending = Points{}
	case QualityPerfect:
		s.Pending.Landing = cfg.PerfectBonus
	case QualityClean:
		s.Pending.Landing = cfg.CleanBonus
	default:
		s.Pending.Landing = 0
	}
}

func landingLabel(q LandingQuality) string {
	switch q {
	case QualityPerfect:
		return "Perfect Landing!"
	case QualityClean:
		return "Clean Landing!"
	case QualityRough:
		return "Rough Landing"
	case QualityCrash:
		return "Wipeout!"
	default:
		return ""
	}
}
