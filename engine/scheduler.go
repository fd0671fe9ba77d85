package engine

import (
	"container/heap"
	"context"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Task is a unit of scheduled work, invoked with the poll time
type Task func(now time.Time)

// Scheduler drives the game on a single goroutine
// One repeating tick task plus a delay queue of one-shot tasks keyed by identity
// Not safe for concurrent use; all calls happen on the control loop
type Scheduler struct {
	// Tick configuration
	tick         Task
	tickInterval time.Duration
	tickDeadline time.Time
	tickActive   bool
	tickCount    uint64

	// One-shot tasks
	delays delayQueue
	byKey  map[uint64]*delayedTask
	seq    uint64
}

// NewScheduler creates an idle scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		byKey: make(map[uint64]*delayedTask),
	}
}

// StartTicker installs fn as the repeating tick, first firing one interval after now
// Any previous tick schedule is replaced
func (s *Scheduler) StartTicker(now time.Time, interval time.Duration, fn Task) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.tick = fn
	s.tickInterval = interval
	s.tickDeadline = now.Add(interval)
	s.tickActive = true
}

// SetTickInterval cancels the running tick schedule and installs a new one at interval
// No-op when no ticker is active
func (s *Scheduler) SetTickInterval(now time.Time, interval time.Duration) {
	if !s.tickActive {
		return
	}
	s.StartTicker(now, interval, s.tick)
}

// StopTicker cancels the repeating tick
func (s *Scheduler) StopTicker() {
	s.tickActive = false
	s.tick = nil
}

// TickerActive reports whether a tick schedule is installed
func (s *Scheduler) TickerActive() bool {
	return s.tickActive
}

// TickInterval returns the interval of the current tick schedule
func (s *Scheduler) TickInterval() time.Duration {
	return s.tickInterval
}

// TickCount returns the number of ticks fired since creation
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}

// After schedules fn to run once, d after now, under key
// A task already registered under key is replaced
func (s *Scheduler) After(now time.Time, d time.Duration, key uint64, fn Task) {
	s.Cancel(key)
	s.seq++
	t := &delayedTask{key: key, at: now.Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.delays, t)
	s.byKey[key] = t
}

// Cancel removes the one-shot task under key; returns false if none was pending
func (s *Scheduler) Cancel(key uint64) bool {
	t, ok := s.byKey[key]
	if !ok {
		return false
	}
	delete(s.byKey, key)
	heap.Remove(&s.delays, t.index)
	return true
}

// CancelAll drops every pending one-shot task
func (s *Scheduler) CancelAll() {
	clear(s.byKey)
	clear(s.delays)
	s.delays = s.delays[:0]
}

// Pending returns the number of one-shot tasks waiting
func (s *Scheduler) Pending() int {
	return len(s.delays)
}

// NextDeadline returns the earliest time any work is due
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	var (
		next time.Time
		ok   bool
	)
	if s.tickActive {
		next, ok = s.tickDeadline, true
	}
	if t := s.delays.peek(); t != nil && (!ok || t.at.Before(next)) {
		next, ok = t.at, true
	}
	return next, ok
}

// Poll runs all work due at or before now in deadline order and returns the number of tasks run
// On equal deadlines one-shot tasks run before the tick
// A tick lagging more than SchedulerMaxBehindTicks intervals is re-anchored to now instead of bursting
func (s *Scheduler) Poll(now time.Time) int {
	ran := 0
	for {
		t := s.delays.peek()
		tickDue := s.tickActive && !s.tickDeadline.After(now)

		if t != nil && !t.at.After(now) && (!tickDue || !t.at.After(s.tickDeadline)) {
			heap.Pop(&s.delays)
			delete(s.byKey, t.key)
			t.fn(now)
			ran++
			continue
		}

		if !tickDue {
			return ran
		}

		s.tickDeadline = s.tickDeadline.Add(s.tickInterval)
		if now.Sub(s.tickDeadline) > s.tickInterval*parameter.SchedulerMaxBehindTicks {
			s.tickDeadline = now.Add(s.tickInterval)
		}
		s.tickCount++
		// fn may reschedule or stop the ticker; deadline is already advanced
		s.tick(now)
		ran++
	}
}

// Run is the control loop: polls due work, executes inbox closures and calls onIdle after each wake
// Every mutation of game state happens on this goroutine
// Returns ctx.Err() on cancellation or nil when inbox is closed
func (s *Scheduler) Run(ctx context.Context, clock TimeProvider, inbox <-chan func(now time.Time), onIdle func()) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		s.Poll(clock.Now())
		if onIdle != nil {
			onIdle()
		}

		var timerC <-chan time.Time
		if deadline, ok := s.NextDeadline(); ok {
			wait := deadline.Sub(clock.Now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			timerC = timer.C
		}

		fired := false
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-inbox:
			if !ok {
				return nil
			}
			fn(clock.Now())
		case <-timerC:
			fired = true
		}

		if timerC != nil && !fired && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
}
