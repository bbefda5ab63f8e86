package chain

import (
	"github.com/ib-77/over/pkg/over"
)

// Value wraps the current value to enable fluent chaining
type Value[T any] struct {
	value T
}

// From begins a chain from a value
func From[T any](value T) Value[T] {
	return Value[T]{value: value}
}

// Get returns the current value, ending the chain
func (c Value[T]) Get() T {
	return c.value
}

// Over applies a same-type transform to the current value
func (c Value[T]) Over(f func(T) T) Value[T] {
	return Value[T]{value: over.Over(c.value, f)}
}

// OverMut lends the current value to f by pointer for in-place mutation
func (c Value[T]) OverMut(f func(*T)) Value[T] {
	over.TapMut(&c.value, f)
	return Value[T]{value: c.value}
}

// Tap runs a side effect on the current value without changing it
func (c Value[T]) Tap(f func(T)) Value[T] {
	return Value[T]{value: over.Tap(c.value, f)}
}

// Over applies a type-changing transform, moving the chain from T to U
func Over[T, U any](c Value[T], f func(T) U) Value[U] {
	return Value[U]{value: over.Over(c.value, f)}
}

// Deref moves the chain from a deref-capable wrapper to its inner target
func Deref[T any, W over.Dereferencer[T]](c Value[W]) Value[T] {
	return Value[T]{value: c.value.Deref()}
}

// Finally collapses the chain into a final value via f
func Finally[T, U any](c Value[T], f func(T) U) U {
	return over.Over(c.value, f)
}
