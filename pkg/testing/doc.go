// Package testing provides fakes and a frame pump for testing motion code
// without a host.
//
// # Quick Start
//
// Create a tester, start an animation on its scheduler and pump frames:
//
//	func TestFade(t *testing.T) {
//	    tester := motiontest.NewTesterWithT(t)
//	    var last any
//	    animation.Animate(tester.Scheduler(), animation.Options{
//	        From: 0.0, To: 1.0,
//	        OnUpdate: func(v any) { last = v },
//	    })
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    // last == 1.0
//	}
//
// # Host Fakes
//
// [FakeElement], [FakeScroller], [FakeMediaQuery] and [FakeGamepadSource]
// stand in for host objects. Elements record every style and attribute
// written to them and dispatch events synchronously.
//
// # Gestures
//
// [Tester.SwipeTouch], [Tester.PinchTouch], [Tester.Tap] and [Tester.Drag]
// fire event sequences with timestamps taken from the fake clock.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/dxmotion/pkg/testing"
package testing
