package animation

import (
	"sort"
	"sync"
	"time"
)

// FrameID identifies a pending frame callback.
type FrameID uint64

type frameRequest struct {
	id        FrameID
	fn        func(now time.Time)
	cancelled bool
}

type timer struct {
	id      uint64
	due     time.Time
	fn      func()
	stopped bool
	fired   bool
}

// Scheduler is the frame loop that drives every animation, recognizer
// timer and polling helper in the runtime.
//
// The host calls [Scheduler.Step] once per display frame. Step first fires
// every timer whose deadline has passed, then runs the frame callbacks that
// were requested before Step began. Callbacks requested during a Step run on
// the next one, so a recursive RequestFrame chain advances exactly once per
// frame.
//
// Each animation owns its own callback chain; there is no global ticker.
// All methods are safe for concurrent use, but callbacks always run on the
// goroutine that calls Step.
type Scheduler struct {
	mu        sync.Mutex
	clock     Clock
	nextFrame FrameID
	frames    []*frameRequest
	byID      map[FrameID]*frameRequest
	nextTimer uint64
	timers    map[uint64]*timer
}

// NewScheduler creates a scheduler reading time from clock. A nil clock
// uses [SystemClock].
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{
		clock:  clock,
		byID:   make(map[FrameID]*frameRequest),
		timers: make(map[uint64]*timer),
	}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestFrame schedules fn to run on the next Step.
func (s *Scheduler) RequestFrame(fn func(now time.Time)) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextFrame++
	req := &frameRequest{id: s.nextFrame, fn: fn}
	s.frames = append(s.frames, req)
	s.byID[req.id] = req
	return req.id
}

// CancelFrame cancels a pending frame callback. Cancelling an unknown or
// already-run frame is a no-op.
func (s *Scheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req, ok := s.byID[id]; ok {
		req.cancelled = true
		delete(s.byID, id)
	}
}

// AfterFunc runs fn on the first Step at or after d has elapsed.
// The returned stop function cancels the timer and reports whether it was
// still pending.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) (stop func() bool) {
	s.mu.Lock()
	s.nextTimer++
	t := &timer{id: s.nextTimer, due: s.clock.Now().Add(d), fn: fn}
	s.timers[t.id] = t
	s.mu.Unlock()

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		delete(s.timers, t.id)
		return true
	}
}

// Step advances the loop by one frame.
func (s *Scheduler) Step() {
	now := s.clock.Now()

	s.mu.Lock()
	var due []*timer
	for id, t := range s.timers {
		if !t.due.After(now) {
			due = append(due, t)
			delete(s.timers, id)
		}
	}
	frames := s.frames
	s.frames = nil
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		// An earlier timer in this batch may have stopped t.
		s.mu.Lock()
		run := !t.stopped
		t.fired = run
		s.mu.Unlock()
		if run && t.fn != nil {
			t.fn()
		}
	}

	for _, req := range frames {
		s.mu.Lock()
		cancelled := req.cancelled
		delete(s.byID, req.id)
		s.mu.Unlock()
		if !cancelled && req.fn != nil {
			req.fn(now)
		}
	}
}

// HasPending reports whether any frame callback or timer is waiting.
func (s *Scheduler) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID) > 0 || len(s.timers) > 0
}
