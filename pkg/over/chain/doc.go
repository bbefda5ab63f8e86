// Package chain provides a fluent wrapper around a single value for
// building synchronous transform pipelines using the over primitives.
//
// It composes operations like Over, OverMut, Tap, and Finally behind a
// convenient Value[T] type. This enables ergonomic call-site chaining
// without intermediate variables at each step.
//
// Key operations:
// - From: begin a chain from a value
// - Over (method): apply a same-type transform
// - OverMut: mutate the current value in place
// - Tap: run side effects without changing the value
// - Over/Deref (functions): move the chain to a new value type
// - Finally/Get: collapse the chain into a final value
//
// Every step applies its function exactly once and eagerly; methods keep
// the value type, while package-level functions change it, since Go
// methods cannot introduce new type parameters.
package chain
