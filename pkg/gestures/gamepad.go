package gestures

import (
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
)

// GamepadButton is the state of one controller button.
type GamepadButton struct {
	Pressed bool
	Value   float64
}

// Gamepad is a snapshot of one controller.
type Gamepad struct {
	Index     int
	ID        string
	Connected bool
	Buttons   []GamepadButton
	Axes      []float64
}

// GamepadSource returns the controllers currently known to the host.
type GamepadSource interface {
	Gamepads() []Gamepad
}

// GamepadPoller samples a GamepadSource once per frame.
type GamepadPoller struct {
	Source    GamepadSource
	Scheduler *animation.Scheduler
	// OnUpdate receives every sample.
	OnUpdate func([]Gamepad)

	mu     sync.Mutex
	ticker *animation.Ticker
	latest []Gamepad
}

// Sample reads the source immediately.
func (p *GamepadPoller) Sample() []Gamepad {
	var pads []Gamepad
	if p.Source != nil {
		pads = append(pads, p.Source.Gamepads()...)
	}
	p.mu.Lock()
	p.latest = pads
	p.mu.Unlock()
	if p.OnUpdate != nil {
		p.OnUpdate(pads)
	}
	return pads
}

// Latest returns the most recent sample.
func (p *GamepadPoller) Latest() []Gamepad {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Gamepad(nil), p.latest...)
}

// Start begins polling on every scheduler frame.
func (p *GamepadPoller) Start() {
	p.mu.Lock()
	if p.ticker != nil || p.Scheduler == nil {
		p.mu.Unlock()
		return
	}
	p.ticker = animation.NewTicker(p.Scheduler, func(time.Duration) {
		p.Sample()
	})
	ticker := p.ticker
	p.mu.Unlock()
	ticker.Start()
}

// Stop ends polling.
func (p *GamepadPoller) Stop() {
	p.mu.Lock()
	ticker := p.ticker
	p.ticker = nil
	p.mu.Unlock()
	if ticker != nil {
		ticker.Stop()
	}
}

// Attach starts polling for the lifetime of scope and resamples when the
// window reports a controller being connected or removed.
func (p *GamepadPoller) Attach(scope *Scope, window EventTarget) {
	resample := func(Event) { p.Sample() }
	scope.Bind(window, EventGamepadConnected, resample)
	scope.Bind(window, EventGamepadRemoved, resample)
	p.Start()
	scope.Defer(p.Stop)
}
