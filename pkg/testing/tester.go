package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	motionerrors "github.com/go-drift/dxmotion/pkg/errors"
	"github.com/go-drift/dxmotion/pkg/motion"
)

// FrameDuration is the frame interval used by PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: scheduler did not settle")

// Tester drives a scheduler from a fake clock so animations, timers and
// pollers advance deterministically.
type Tester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	store     *motion.Store
	recorder  *ErrorRecorder
}

// NewTester creates a tester with its own clock, scheduler and store.
// Errors keep going to the global handler; use NewTesterWithT to capture
// them.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{
		clock:     clk,
		scheduler: animation.NewScheduler(clk),
		store:     motion.NewStore(clk),
	}
}

// NewTesterWithT creates a tester that records reported errors and panics
// for the duration of the test. The previous handler is restored on cleanup.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	tester.recorder = &ErrorRecorder{}
	prev := motionerrors.SetHandler(tester.recorder)
	t.Cleanup(func() { motionerrors.SetHandler(prev) })
	return tester
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler driven by Pump.
func (t *Tester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Store returns the motion value store.
func (t *Tester) Store() *motion.Store {
	return t.store
}

// Now returns the current fake time.
func (t *Tester) Now() time.Time {
	return t.clock.Now()
}

// Errors returns the recorder installed by NewTesterWithT, or nil.
func (t *Tester) Errors() *ErrorRecorder {
	return t.recorder
}

// Pump runs one frame without advancing time.
func (t *Tester) Pump() {
	t.scheduler.Step()
}

// PumpFor advances the clock by d and runs one frame.
func (t *Tester) PumpFor(d time.Duration) {
	t.clock.Advance(d)
	t.scheduler.Step()
}

// PumpFrames runs n frames, advancing the clock by frame before each.
func (t *Tester) PumpFrames(n int, frame time.Duration) {
	for range n {
		t.PumpFor(frame)
	}
}

// PumpAndSettle runs frames until nothing is pending on the scheduler or
// the timeout is reached. The first frame runs without advancing time so
// animations that were just started record their start.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	t.Pump()
	var elapsed time.Duration
	for t.scheduler.HasPending() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Frame()
		t.scheduler.Step()
		elapsed += FrameDuration
	}
	return nil
}

// ErrorRecorder is an error handler that keeps everything it receives.
type ErrorRecorder struct {
	mu     sync.Mutex
	errors []*motionerrors.MotionError
	panics []*motionerrors.PanicError
}

func (r *ErrorRecorder) HandleError(err *motionerrors.MotionError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

func (r *ErrorRecorder) HandlePanic(err *motionerrors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors in order.
func (r *ErrorRecorder) Errors() []*motionerrors.MotionError {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*motionerrors.MotionError(nil), r.errors...)
}

// Panics returns the recovered panics in order.
func (r *ErrorRecorder) Panics() []*motionerrors.PanicError {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*motionerrors.PanicError(nil), r.panics...)
}
