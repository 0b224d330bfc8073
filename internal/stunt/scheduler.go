// Package stunt implements the stunt tracking and scoring engine.
//
// The engine watches per-tick motion samples of the rider, tracks each jump
// from take-off to touchdown, classifies the landing, and commits points to a
// Ledger only after the rider has survived a grace period. It has no I/O and
// no goroutines: everything happens inside Engine.Tick, driven by the caller's
// fixed-timestep loop.
package stunt

import (
	"sort"
	"time"
)

// Token identifies a callback registered with a Scheduler.
// The zero Token is never issued.
type Token uint64

type timer struct {
	token Token
	due   time.Duration
	fn    func()
}

// Scheduler runs deferred callbacks against a monotonic clock.
// The clock only moves when the owner calls Advance, and due callbacks run
// synchronously inside Advance in due order (ties keep scheduling order).
type Scheduler struct {
	now    time.Duration
	last   Token
	timers []timer // sorted by due
}

// NewScheduler creates a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current clock value.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// ScheduleAfter registers fn to run once the clock reaches Now()+d.
// Negative delays are treated as zero; the callback still waits for the
// next Advance or RunDue call.
func (s *Scheduler) ScheduleAfter(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.last++
	t := timer{token: s.last, due: s.now + d, fn: fn}

	i := sort.Search(len(s.timers), func(i int) bool {
		return s.timers[i].due > t.due
	})
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t

	return t.token
}

// Cancel removes a scheduled callback.
// Canceling an already-fired, already-canceled, or unknown token is a no-op
// and reports false.
func (s *Scheduler) Cancel(tok Token) bool {
	i := s.index(tok)
	if i < 0 {
		return false
	}
	s.remove(i)
	return true
}

// Fire runs a scheduled callback immediately, ahead of its due time.
// Reports false if the token is no longer scheduled.
func (s *Scheduler) Fire(tok Token) bool {
	i := s.index(tok)
	if i < 0 {
		return false
	}
	t := s.timers[i]
	s.remove(i)
	t.fn()
	return true
}

// Scheduled reports whether tok is still waiting to fire.
func (s *Scheduler) Scheduled(tok Token) bool {
	return s.index(tok) >= 0
}

// Len returns the number of callbacks waiting to fire.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves the clock forward by d and runs every callback that became due.
// Returns the number of callbacks fired.
func (s *Scheduler) Advance(d time.Duration) int {
	if d > 0 {
		s.now += d
	}
	return s.RunDue()
}

// RunDue runs callbacks whose due time is not after Now.
// A callback is removed before it runs, so canceling its own token from
// inside the callback is a no-op.
func (s *Scheduler) RunDue() int {
	fired := 0
	for len(s.timers) > 0 && s.timers[0].due <= s.now {
		t := s.timers[0]
		s.remove(0)
		t.fn()
		fired++
	}
	return fired
}

func (s *Scheduler) index(tok Token) int {
	if tok == 0 {
		return -1
	}
	for i := range s.timers {
		if s.timers[i].token == tok {
			return i
		}
	}
	return -1
}

func (s *Scheduler) remove(i int) {
	copy(s.timers[i:], s.timers[i+1:])
	s.timers[len(s.timers)-1] = timer{}
	s.timers = s.timers[:len(s.timers)-1]
}
