// Package animation is the value driver of the motion runtime.
//
// [Animate] moves a value from one state to another on a [Scheduler] and
// returns [Controls] for pausing, reversing, seeking and stopping it. Four
// transition types are supported:
//
//   - tween: a fixed duration shaped by an [Easing] curve
//   - spring: a damped harmonic oscillator
//   - inertia: exponentially decaying velocity toward a projected target
//   - physics: Euler integration of acceleration and friction
//
// Values may be numbers, colors, or strings with embedded numbers and
// colors such as "0px 4px 8px rgba(0, 0, 0, 0.2)". [NewInterpolator] picks
// the interpolation strategy once; incompatible pairs snap to the target.
//
// [Stagger] spreads sibling start times and [Group] waits for a set of
// animations to finish.
//
// The host calls [Scheduler.Step] once per display frame. Tests drive the
// scheduler from a fake clock; see the testing package.
package animation
