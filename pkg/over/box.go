package over

// Box is an owning handle around a single value, exposing it through the
// read and mutable dereferencing views. It is the in-library wrapper for
// OverDeref/OverDerefMut and a template for user-defined handles.
type Box[T any] struct {
	inner T
}

// NewBox wraps the value in an owning handle
func NewBox[T any](value T) *Box[T] {
	return &Box[T]{inner: value}
}

// Deref returns a copy of the inner target
func (b *Box[T]) Deref() T {
	return b.inner
}

// DerefMut returns a pointer to the inner target
func (b *Box[T]) DerefMut() *T {
	return &b.inner
}

// Set replaces the inner target
func (b *Box[T]) Set(value T) {
	b.inner = value
}

// IsNil reports whether the handle itself is nil
func (b *Box[T]) IsNil() bool {
	return b == nil
}
