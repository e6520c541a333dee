// Package motion holds reactive motion values and the hooks built on them.
//
// A [Store] maps string keys to the latest value of each animated property,
// together with its velocity. [Value] is a typed handle onto one key; it
// always reads the live store, so a handle captured long ago still sees
// current data. Derived values ([Transform], [TransformRange]) and the
// scroll, path, scramble and visibility helpers all publish into a store so
// that the declarative components and custom code observe the same state.
package motion
