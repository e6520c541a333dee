// Package gestures turns raw host input into higher-level gestures.
//
// Hosts deliver events to an [EventTarget]. Recognizers such as [Swipe],
// [Pinch] and [Pan] keep their own state and expose plain methods that take
// events, so they can be driven directly in tests or attached to a target
// through a [Scope], which releases every listener when closed.
//
// Device helpers ([GamepadPoller], [ShakeDetector], [TiltScroll]) follow the
// same pattern for sensors and game controllers.
package gestures
