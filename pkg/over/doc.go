// Package over contains single-value, synchronous transform-application
// primitives. Each operation forwards a view of its receiver into a
// caller-supplied function exactly once and returns that function's result,
// so any value can be pushed through a transformation without an
// intermediate variable.
//
// Highlights:
// - Over: consume the value and return f(value)
// - OverRef/OverMut: lend the value by pointer, read-only or mutating
// - OverPtr: dereference a plain pointer before applying f
// - OverDeref/OverDerefMut: resolve a wrapper's inner target first
// - Tap/TapMut: side effects that keep the value flowing
// - Apply: fold a value through a list of same-type transforms
//
// The package defines no error kinds: failures belong to the supplied
// function and propagate through the return path untouched. Box[T] is a
// ready-made handle satisfying the dereferencing capabilities.
package over
