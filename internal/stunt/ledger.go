package stunt

// Ledger is the committed score of one ride.
// It is written only by the engine's commit path and never decreases.
type Ledger struct {
	committed int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Committed returns the permanent score.
func (l *Ledger) Committed() int {
	return l.committed
}

func (l *Ledger) add(points int) {
	if points > 0 {
		l.committed += points
	}
}
