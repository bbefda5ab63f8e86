package over

// Over passes the value into f and returns whatever f returns.
// The value is handed over as-is; f is called exactly once, synchronously.
func Over[T, R any](value T, f func(T) R) R {
	return f(value)
}

// OverRef passes a pointer to the value into f for reading and returns
// whatever f returns. The pointer is scoped to the call: f must not write
// through it or keep it after returning.
func OverRef[T, R any](value *T, f func(*T) R) R {
	return f(value)
}

// OverMut passes a pointer to the value into f, which may mutate it in
// place. The caller keeps the value and observes any mutation; the return
// value is f's result, not the mutated value.
func OverMut[T, R any](value *T, f func(*T) R) R {
	return f(value)
}

// OverPtr dereferences the pointer and passes the pointed-to value into f.
// Useful when f expects the target type rather than the pointer type.
func OverPtr[T, R any](value *T, f func(T) R) R {
	return f(*value)
}

// Tap calls f with the value for its side effects and returns the value
// unchanged, so calls can be inserted into an expression.
func Tap[T any](value T, f func(T)) T {
	f(value)
	return value
}

// TapMut calls f with a pointer to the value, allowing in-place mutation,
// and returns the same pointer for further chaining.
func TapMut[T any](value *T, f func(*T)) *T {
	f(value)
	return value
}

// Apply folds the value through each transform in order and returns the
// final value. With no transforms it returns the value untouched.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}
