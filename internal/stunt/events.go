package stunt

import "time"

// Category groups stunt events for presentation.
type Category int

const (
	CategoryFlip Category = iota
	CategoryAirtime
	CategoryLanding
	CategoryCombo
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryFlip:
		return "flip"
	case CategoryAirtime:
		return "airtime"
	case CategoryLanding:
		return "landing"
	case CategoryCombo:
		return "combo"
	default:
		return "unknown"
	}
}

// Event tells the presentation layer what to show. Flip events fire the
// moment a rotation completes; the rest fire when a jump is committed.
type Event struct {
	Label    string
	Category Category
	Points   int
	Quality  LandingQuality // landing events only
	At       time.Duration
}

// Outcome is how a jump left the grace period.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeDiscarded
)

// String returns a lowercase outcome name.
func (o Outcome) String() string {
	if o == OutcomeDiscarded {
		return "discarded"
	}
	return "committed"
}

// JumpReport summarizes a resolved jump for logging and persistence.
type JumpReport struct {
	SessionID  int
	Outcome    Outcome
	Reason     string // why a jump was discarded ("crash", "reentry")
	Quality    LandingQuality
	Flips      int
	Airtime    time.Duration
	Pending    Points
	Multiplier float64
	Awarded    int // points that reached the ledger
	Combo      int // streak after this jump
	ResolvedAt time.Duration
}

// Listener receives engine output. Callbacks run synchronously inside
// Engine.Tick or Engine.Crash and must not call back into the engine.
type Listener interface {
	OnStuntEvent(ev Event)
	OnScoreChanged(total int)
	OnJumpResolved(r JumpReport)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	StuntEvent   func(Event)
	ScoreChanged func(int)
	JumpResolved func(JumpReport)
}

// OnStuntEvent implements Listener.
func (f ListenerFuncs) OnStuntEvent(ev Event) {
	if f.StuntEvent != nil {
		f.StuntEvent(ev)
	}
}

// OnScoreChanged implements Listener.
func (f ListenerFuncs) OnScoreChanged(total int) {
	if f.ScoreChanged != nil {
		f.ScoreChanged(total)
	}
}

// OnJumpResolved implements Listener.
func (f ListenerFuncs) OnJumpResolved(r JumpReport) {
	if f.JumpResolved != nil {
		f.JumpResolved(r)
	}
}

// listeners fans out to every registered Listener in order.
type listeners []Listener

func (ls listeners) OnStuntEvent(ev Event) {
	for _, l := range ls {
		l.OnStuntEvent(ev)
	}
}

func (ls listeners) OnScoreChanged(total int) {
	for _, l := range ls {
		l.OnScoreChanged(total)
	}
}

func (ls listeners) OnJumpResolved(r JumpReport) {
	for _, l := range ls {
		l.OnJumpResolved(r)
	}
}
