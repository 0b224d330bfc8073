package stunt

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-riders/internal/config"
)

// Engine turns per-tick motion frames into stunt events and committed points.
// It is not safe for concurrent use; drive it from a single loop.
type Engine struct {
	cfg      config.StuntConfig
	sched    *Scheduler
	ledger   *Ledger
	contacts GroundContactProvider
	wheels   *WheelContacts // set when the engine owns contact tracking
	sampler  sampler
	flight   flightTracker
	combo    comboAccumulator
	commit   committer
	out      listeners
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithListener registers a listener. Listeners are called in registration order.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.out = append(e.out, l)
		}
	}
}

// WithContactProvider makes the engine read wheel contact from p instead of
// the FrontGrounded/BackGrounded fields of each Frame. Timestamps reported by
// p must be on the engine clock.
func WithContactProvider(p GroundContactProvider) Option {
	return func(e *Engine) {
		if p != nil {
			e.contacts = p
			e.wheels = nil
		}
	}
}

// New validates cfg and creates an engine writing to ledger.
// A nil ledger gets a fresh one.
func New(cfg config.StuntConfig, ledger *Ledger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stunt: %w", err)
	}
	if ledger == nil {
		ledger = NewLedger()
	}

	wheels := NewWheelContacts()
	e := &Engine{
		cfg:      cfg,
		sched:    NewScheduler(),
		ledger:   ledger,
		contacts: wheels,
		wheels:   wheels,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.applyConfig()
	e.commit = committer{
		sched:  e.sched,
		ledger: e.ledger,
		combo:  &e.combo,
		cfg:    &e.cfg,
		out:    e.out,
		logger: e.logger,
	}
	return e, nil
}

func (e *Engine) applyConfig() {
	e.combo.step = e.cfg.Combo.Step
	e.combo.resetDelay = e.cfg.Combo.ResetDelay
	e.combo.zeroResets = e.cfg.Policy.RoughLanding == config.RoughLandingReset
}

// Reconfigure swaps the scoring rules. Thresholds apply from the next
// classification on; a jump already pending keeps its computed points.
func (e *Engine) Reconfigure(cfg config.StuntConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("stunt: %w", err)
	}
	e.cfg = cfg
	e.applyConfig()
	e.logger.Info("stunt config reloaded")
	return nil
}

// Config returns the active scoring rules.
func (e *Engine) Config() config.StuntConfig {
	return e.cfg
}

// Tick processes one fixed-timestep frame: the clock advances, due commits
// fire, then contact edges and in-air rotation are evaluated.
func (e *Engine) Tick(f Frame) {
	dt := secondsToDuration(f.DT)
	e.sched.Advance(dt)
	now := e.sched.Now()

	if e.wheels != nil {
		e.wheels.Update(now, f.FrontGrounded, f.BackGrounded)
	}
	s := e.sampler.read(f, dt, e.contacts)

	switch e.flight.observe(s.grounded()) {
	case edgeTakeoff:
		e.takeoff(now, s)
		return
	case edgeTouchdown:
		if e.flight.state == Airborne {
			e.airborne(now, s)
		}
		e.touchdown(now, s)
		return
	}

	if e.flight.state == Airborne {
		e.airborne(now, s)
	}
}

func (e *Engine) takeoff(now time.Duration, s sample) {
	if e.commit.pending() {
		switch e.cfg.Policy.Reentry {
		case config.ReentryCommit:
			e.commit.resolveNow()
		case config.ReentryDiscard:
			e.commit.discard("reentry")
		default:
			e.flight.suppress()
			e.logger.Debug("take-off suppressed while previous jump is pending")
			return
		}
	}
	sess := e.flight.begin(now, s.rotation)
	e.logger.Debug("take-off", "jump", sess.ID, "rotation", s.rotation)
}

func (e *Engine) airborne(now time.Duration, s sample) {
	e.flight.accumulate(s)
	sess := e.flight.session
	if sess == nil {
		return
	}
	if b, ok := detectFlips(sess, e.cfg.Flip.PointsPerFlip); ok {
		e.out.OnStuntEvent(Event{
			Label:    b.label(),
			Category: CategoryFlip,
			Points:   b.points,
			At:       now,
		})
	}
}

func (e *Engine) touchdown(now time.Duration, s sample) {
	sess := e.flight.land(now)
	if sess == nil {
		return
	}

	ls := sampleLanding(s, e.contacts, e.cfg.Landing.DualWheelWindow)
	q := classifyLanding(ls, e.cfg.Landing)
	applyLanding(sess, ls, q, e.cfg.Landing)
	aggregate(sess, e.cfg)

	e.logger.Debug("landing",
		"jump", sess.ID,
		"quality", q,
		"angle", ls.AngleFromVertical,
		"speed", ls.Speed,
		"dual", ls.DualWheelWithinWindow,
		"airtime", sess.Airtime,
		"rotation", sess.CumulativeRotation,
	)

	e.commit.begin(sess)
}

// Crash signals that the rider died. A pending jump is discarded; a jump in
// progress is abandoned and its eventual touchdown ignored. With nothing in
// flight or pending this is a no-op.
func (e *Engine) Crash() {
	if e.commit.discard("crash") {
		return
	}
	if e.flight.state != Airborne || e.flight.session == nil {
		return
	}

	sess := e.flight.session
	sess.Crashed = true
	sess.Pending = Points{}
	sess.Quality = QualityCrash
	e.flight.suppress()

	e.logger.Info("jump discarded", "jump", sess.ID, "reason", "crash")
	e.out.OnJumpResolved(JumpReport{
		SessionID:  sess.ID,
		Outcome:    OutcomeDiscarded,
		Reason:     "crash",
		Quality:    QualityCrash,
		Flips:      sess.FlipsCompleted,
		Airtime:    sess.Airtime,
		Multiplier: 1,
		Combo:      e.combo.state(e.sched.Now()).Count,
		ResolvedAt: e.sched.Now(),
	})
}

// CurrentComboCount returns the streak after lazy decay.
func (e *Engine) CurrentComboCount() int {
	return e.combo.state(e.sched.Now()).Count
}

// Combo returns the streak state after lazy decay.
func (e *Engine) Combo() ComboState {
	return e.combo.state(e.sched.Now())
}

// Ledger returns the ledger the engine commits to.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Now returns the engine clock.
func (e *Engine) Now() time.Duration {
	return e.sched.Now()
}

// State returns the flight state.
func (e *Engine) State() FlightState {
	return e.flight.state
}

// CommitState returns the committer state.
func (e *Engine) CommitState() CommitState {
	return e.commit.state
}

// Session returns a copy of the jump in the air or waiting for commit.
func (e *Engine) Session() (JumpSession, bool) {
	if e.flight.session != nil {
		return *e.flight.session, true
	}
	if e.commit.session != nil {
		return *e.commit.session, true
	}
	return JumpSession{}, false
}
