package animation

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/go-drift/dxmotion/pkg/errors"
)

// Status is the state of a running animation.
//
//	Idle ──► Playing ──► Completed
//	           │  ▲
//	   Pause() ▼  │ Play()
//	          Paused ──► Stopped (Stop() from any non-terminal state)
//
// Idle covers the start delay. Completed and Stopped are terminal: once
// reached, the controls are inert. Reversal is a flag, not a status.
type Status int

const (
	// StatusIdle means the animation is waiting for its delay to elapse.
	StatusIdle Status = iota
	// StatusPlaying means a frame callback is scheduled.
	StatusPlaying
	// StatusPaused means playback is suspended and may be resumed.
	StatusPaused
	// StatusCompleted means the animation reached its target.
	StatusCompleted
	// StatusStopped means the animation was cancelled before finishing.
	StatusStopped
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s is Completed or Stopped.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusStopped
}

// Options configures a single [Animate] call.
type Options struct {
	// From and To may be numbers, colors or strings with embedded numbers
	// and colors. Inertia and physics only use From, which must be numeric.
	From, To any
	// Velocity seeds inertia, physics and spring transitions, in units per second.
	Velocity float64
	// OnUpdate receives every intermediate value. Numbers arrive as float64,
	// colors and complex values as strings.
	OnUpdate   func(v any)
	OnComplete func()
	Transition Transition
	// Index and Total are passed to Transition.DelayFunc.
	Index, Total int
}

const (
	springRestDelta  = 0.01
	inertiaRestSpeed = 1.0
	physicsRestSpeed = 0.1
	maxFrameDelta    = 100 * time.Millisecond
	tickOp           = "animation.tick"
	animateOp        = "animation.Animate"
)

// Controls is the handle returned by [Animate].
type Controls struct {
	mu          sync.Mutex
	scheduler   *Scheduler
	opts        Options
	transition  Transition
	interp      Interpolator
	status      Status
	reversed    bool
	currentTime time.Duration
	scale       float64
	lastTime    time.Time
	hasLast     bool
	frame       FrameID
	stopDelay   func() bool
	done        chan struct{}

	// velocity-driven state
	position float64
	velocity float64
	target   float64
	amp      float64
	elapsed  time.Duration

	statusListeners map[int]func(Status)
	nextListenerID  int
}

// Animate starts an animation on s and returns its controls.
//
// The returned controls are never nil. When the options are invalid (an
// unknown easing name, a NaN or infinite end, a non-numeric start for
// inertia or physics) the error is returned along with controls that are
// already stopped.
//
// Frames run on the goroutine calling s.Step. A panic in a callback is
// reported through the error handler and stops the animation.
func Animate(s *Scheduler, opts Options) (*Controls, error) {
	c := &Controls{
		scheduler:       s,
		opts:            opts,
		scale:           1,
		done:            make(chan struct{}),
		statusListeners: make(map[int]func(Status)),
	}
	if s == nil {
		c.status = StatusStopped
		close(c.done)
		return c, errors.New(animateOp, errors.KindHost, errors.ErrNoTarget)
	}

	t, err := opts.Transition.Resolve()
	if err != nil {
		c.status = StatusStopped
		close(c.done)
		return c, err
	}
	c.transition = t

	for _, v := range []any{opts.From, opts.To} {
		if nonFinite(v) {
			c.status = StatusStopped
			close(c.done)
			return c, errors.New(animateOp, errors.KindInterpolation, &errors.ParseError{Input: toString(v), Want: "finite number"})
		}
	}

	switch t.Type {
	case TypeInertia, TypePhysics:
		from, ok := Float(opts.From)
		if !ok || !finite(from) {
			c.status = StatusStopped
			close(c.done)
			return c, errNotNumeric(animateOp, opts.From)
		}
		c.position = from
		c.velocity = opts.Velocity
		if !finite(c.velocity) {
			c.velocity = 0
		}
		if t.Type == TypeInertia {
			c.amp = t.Power * c.velocity
			c.target = from + c.amp
			if t.ModifyTarget != nil {
				c.target = t.ModifyTarget(c.target)
				c.amp = c.target - from
			}
			if !finite(c.target) || !finite(c.amp) {
				c.target, c.amp = from, 0
			}
		}
	case TypeSpring:
		c.interp = NewInterpolator(opts.From, opts.To)
		if d := c.interp.Delta(); d != 0 && finite(opts.Velocity) {
			c.velocity = opts.Velocity / d
		}
	default:
		c.interp = NewInterpolator(opts.From, opts.To)
	}

	if delay := t.DelayFor(opts.Index, opts.Total); delay > 0 {
		c.stopDelay = s.AfterFunc(delay, c.begin)
	} else {
		c.begin()
	}
	return c, nil
}

// begin starts playback once the delay has elapsed. A Pause issued during
// the delay does not hold the start back.
func (c *Controls) begin() {
	c.mu.Lock()
	if c.status.Terminal() {
		c.mu.Unlock()
		return
	}
	c.stopDelay = nil
	c.resumeLocked()
	c.mu.Unlock()
	c.notifyStatus(StatusPlaying)
}

func (c *Controls) resumeLocked() {
	c.status = StatusPlaying
	c.hasLast = false
	c.frame = c.scheduler.RequestFrame(c.tick)
}

func (c *Controls) tick(now time.Time) {
	c.mu.Lock()
	if c.status != StatusPlaying {
		c.mu.Unlock()
		return
	}
	var dt time.Duration
	if c.hasLast {
		dt = now.Sub(c.lastTime)
		if dt < 0 {
			dt = 0
		}
	}
	c.lastTime, c.hasLast = now, true
	c.mu.Unlock()

	defer errors.Recover(tickOp, func(any) {
		c.finish(StatusStopped)
	})

	var (
		value    any
		finished bool
	)
	switch c.transition.Type {
	case TypeInertia:
		value, finished = c.stepInertia(dt)
	case TypePhysics:
		value, finished = c.stepPhysics(dt)
	case TypeSpring:
		value, finished = c.stepSpring(dt)
	default:
		value, finished = c.stepTween(dt)
	}

	if c.opts.OnUpdate != nil {
		c.opts.OnUpdate(value)
	}

	if finished {
		c.finish(StatusCompleted)
		return
	}

	c.mu.Lock()
	if c.status == StatusPlaying {
		c.frame = c.scheduler.RequestFrame(c.tick)
	}
	c.mu.Unlock()
}

func (c *Controls) stepTween(dt time.Duration) (any, bool) {
	c.mu.Lock()
	delta := time.Duration(float64(dt) * c.scale)
	if c.reversed {
		delta = -delta
	}
	c.currentTime += delta
	if c.currentTime < 0 {
		c.currentTime = 0
	}
	if c.currentTime > c.transition.Duration {
		c.currentTime = c.transition.Duration
	}
	p := Clamp(0, 1, float64(c.currentTime)/float64(c.transition.Duration))
	reversed := c.reversed
	c.mu.Unlock()

	value := c.interp.At(c.transition.Ease(p))
	return value, (!reversed && p >= 1) || (reversed && p <= 0)
}

func (c *Controls) stepSpring(dt time.Duration) (any, bool) {
	t := c.transition
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if dt > 0 {
		freq := math.Sqrt(t.Stiffness / t.Mass)
		ratio := t.Damping / (2 * math.Sqrt(t.Stiffness*t.Mass))
		spring := harmonica.NewSpring(dt.Seconds(), freq, ratio)
		c.position, c.velocity = spring.Update(c.position, c.velocity, 1)
	}
	if !finite(c.position) || !finite(c.velocity) {
		return c.interp.At(1), true
	}
	if math.Abs(1-c.position) < springRestDelta && math.Abs(c.velocity) < springRestDelta {
		return c.interp.At(1), true
	}
	return c.interp.At(c.position), false
}

// stepInertia moves toward the projected rest point with exponentially
// decaying velocity. The value snaps to the target once the speed drops
// below one unit per second.
func (c *Controls) stepInertia(dt time.Duration) (any, bool) {
	t := c.transition
	c.elapsed += dt
	decay := math.Exp(-float64(c.elapsed) / float64(t.TimeConstant))
	speed := c.amp / t.TimeConstant.Seconds() * decay
	if math.Abs(speed) < inertiaRestSpeed || !finite(speed) {
		c.position, c.velocity = c.target, 0
		return c.target, true
	}
	c.position = c.target - c.amp*decay
	c.velocity = speed
	return c.position, false
}

// stepPhysics integrates with explicit Euler steps. Friction is applied
// once per frame.
func (c *Controls) stepPhysics(dt time.Duration) (any, bool) {
	t := c.transition
	secs := dt.Seconds()
	last := c.position
	c.velocity += t.Acceleration * secs
	c.velocity *= 1 - t.Friction
	c.position += c.velocity * secs
	if !finite(c.velocity) || !finite(c.position) {
		c.position, c.velocity = last, 0
		return last, true
	}
	return c.position, math.Abs(c.velocity) < physicsRestSpeed
}

func (c *Controls) finish(status Status) {
	c.mu.Lock()
	if c.status.Terminal() {
		c.mu.Unlock()
		return
	}
	c.status = status
	c.scheduler.CancelFrame(c.frame)
	if c.stopDelay != nil {
		c.stopDelay()
		c.stopDelay = nil
	}
	close(c.done)
	c.mu.Unlock()

	if status == StatusCompleted {
		if c.opts.OnComplete != nil {
			c.opts.OnComplete()
		}
		if c.transition.OnComplete != nil {
			c.transition.OnComplete()
		}
	}
	c.notifyStatus(status)
}

// Stop cancels the animation. The pending frame is cancelled before Stop
// returns, so no further updates are delivered.
func (c *Controls) Stop() {
	c.finish(StatusStopped)
}

// Pause suspends playback. It has no effect on a finished animation.
func (c *Controls) Pause() {
	c.mu.Lock()
	if c.status != StatusPlaying && c.status != StatusIdle {
		c.mu.Unlock()
		return
	}
	wasPlaying := c.status == StatusPlaying
	c.status = StatusPaused
	if wasPlaying {
		c.scheduler.CancelFrame(c.frame)
	}
	c.mu.Unlock()
	c.notifyStatus(StatusPaused)
}

// Play resumes a paused animation.
func (c *Controls) Play() {
	c.mu.Lock()
	if c.status != StatusPaused || c.stopDelay != nil {
		c.mu.Unlock()
		return
	}
	c.resumeLocked()
	c.mu.Unlock()
	c.notifyStatus(StatusPlaying)
}

// Reverse flips the playback direction. A reversed tween runs its clock
// backwards and completes when progress returns to 0.
func (c *Controls) Reverse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() {
		return
	}
	c.reversed = !c.reversed
}

// Seek moves a tween's clock to d, clamped to the transition duration.
func (c *Controls) Seek(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() {
		return
	}
	c.currentTime = max(0, min(d, c.transition.Duration))
}

// SetTimeScale scales how fast a tween's clock advances. Non-finite and
// negative factors are ignored.
func (c *Controls) SetTimeScale(f float64) {
	if !finite(f) || f < 0 {
		return
	}
	c.mu.Lock()
	c.scale = f
	c.mu.Unlock()
}

// IsPlaying reports whether frames are being delivered.
func (c *Controls) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == StatusPlaying
}

// IsReversed reports whether the direction flag is set.
func (c *Controls) IsReversed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reversed
}

// Status returns the current state.
func (c *Controls) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Done is closed when the animation completes or is stopped.
func (c *Controls) Done() <-chan struct{} {
	return c.done
}

// AddStatusListener registers a callback for status changes.
// Returns an unsubscribe function.
func (c *Controls) AddStatusListener(fn func(Status)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.statusListeners, id)
	}
}

func (c *Controls) notifyStatus(status Status) {
	c.mu.Lock()
	listeners := make([]func(Status), 0, len(c.statusListeners))
	for _, fn := range c.statusListeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(status)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toString(v any) string {
	return fmt.Sprint(v)
}
