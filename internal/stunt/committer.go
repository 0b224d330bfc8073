package stunt

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

// CommitState is the state of the grace-period committer.
type CommitState int

const (
	CommitIdle CommitState = iota
	CommitPending
)

// String returns a human-readable state name.
func (s CommitState) String() string {
	if s == CommitPending {
		return "pending"
	}
	return "idle"
}

// committer holds a finished jump until the grace period has passed. The
// commit path is the only code that writes the ledger or grows the combo.
type committer struct {
	sched   *Scheduler
	ledger  *Ledger
	combo   *comboAccumulator
	cfg     *config.StuntConfig
	out     listeners
	logger  *log.Logger
	state   CommitState
	session *JumpSession
	token   Token
}

func (c *committer) pending() bool {
	return c.state == CommitPending
}

// begin parks a finalized session and schedules its commit.
func (c *committer) begin(s *JumpSession) {
	c.state = CommitPending
	c.session = s
	c.token = c.sched.ScheduleAfter(c.cfg.GracePeriod, c.commit)
}

// resolveNow commits the pending jump without waiting for the grace period.
func (c *committer) resolveNow() {
	if c.state != CommitPending {
		return
	}
	if !c.sched.Fire(c.token) {
		// Timer already gone; commit directly so the session is not lost.
		c.commit()
	}
}

// discard cancels the pending commit. The ledger and combo are untouched.
func (c *committer) discard(reason string) bool {
	if c.state != CommitPending {
		return false
	}
	c.sched.Cancel(c.token)
	s := c.session
	c.idle()

	c.logger.Info("jump discarded", "jump", s.ID, "reason", reason, "pending", s.Pending.Total())
	c.out.OnJumpResolved(JumpReport{
		SessionID:  s.ID,
		Outcome:    OutcomeDiscarded,
		Reason:     reason,
		Quality:    s.Quality,
		Flips:      s.FlipsCompleted,
		Airtime:    s.Airtime,
		Pending:    s.Pending,
		Multiplier: 1,
		Combo:      c.combo.state(c.sched.Now()).Count,
		ResolvedAt: c.sched.Now(),
	})
	return true
}

// commit is the scheduled action.
func (c *committer) commit() {
	if c.state != CommitPending {
		return
	}
	s := c.session
	now := c.sched.Now()
	c.idle()

	base := s.Pending.Total()
	awarded, mult := 0, 1.0
	if s.Crashed {
		c.combo.reset()
	} else {
		awarded, mult = c.combo.apply(now, base)
	}
	c.ledger.add(awarded)
	streak := c.combo.state(now).Count

	if s.Pending.Airtime > 0 {
		c.out.OnStuntEvent(Event{
			Label:    airtimeLabel(s.Airtime, c.cfg.Airtime.Granularity),
			Category: CategoryAirtime,
			Points:   s.Pending.Airtime,
			At:       now,
		})
	}
	if s.Pending.Landing > 0 {
		c.out.OnStuntEvent(Event{
			Label:    landingLabel(s.Quality),
			Category: CategoryLanding,
			Points:   s.Pending.Landing,
			Quality:  s.Quality,
			At:       now,
		})
	}
	if awarded > 0 && streak > 1 {
		c.out.OnStuntEvent(Event{
			Label:    comboLabel(streak),
			Category: CategoryCombo,
			Points:   awarded - base,
			At:       now,
		})
	}

	c.logger.Info("jump committed",
		"jump", s.ID,
		"quality", s.Quality,
		"flips", s.FlipsCompleted,
		"base", base,
		"multiplier", mult,
		"awarded", awarded,
		"total", c.ledger.Committed(),
	)

	c.out.OnScoreChanged(c.ledger.Committed())
	c.out.OnJumpResolved(JumpReport{
		SessionID:  s.ID,
		Outcome:    OutcomeCommitted,
		Quality:    s.Quality,
		Flips:      s.FlipsCompleted,
		Airtime:    s.Airtime,
		Pending:    s.Pending,
		Multiplier: mult,
		Awarded:    awarded,
		Combo:      streak,
		ResolvedAt: now,
	})
}

func (c *committer) idle() {
	c.state = CommitIdle
	c.session = nil
	c.token = 0
}
