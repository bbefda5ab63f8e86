package over

// Dereferencer is the read-view capability: a wrapper type that exposes its
// inner target value.
type Dereferencer[T any] interface {
	// Deref returns the inner target value
	Deref() T
}

// MutDereferencer extends Dereferencer with a mutable view of the target
type MutDereferencer[T any] interface {
	Dereferencer[T]
	// DerefMut returns a pointer to the inner target for in-place mutation
	DerefMut() *T
}

// OverDeref resolves the wrapper's read view and passes the inner target
// into f, returning whatever f returns. Use it when f expects the wrapped
// type rather than the wrapper itself.
func OverDeref[T, R any](value Dereferencer[T], f func(T) R) R {
	return f(value.Deref())
}

// OverDerefMut resolves the wrapper's mutable view and passes a pointer to
// the inner target into f, which may mutate it in place. The wrapper
// observes the mutation; the return value is f's result.
func OverDerefMut[T, R any](value MutDereferencer[T], f func(*T) R) R {
	return f(value.DerefMut())
}
