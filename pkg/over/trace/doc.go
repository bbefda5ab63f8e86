// Package trace provides an optional recorder around the over primitives
// for callers that want to observe transform applications: a counter of
// applications, a span per application, and an Application event carrying
// a unique id, start time, and duration.
//
// Key constructs:
// - Recorder: owns the metrics registry, tracer, hooks, and clock
// - Over/OverRef/OverMut: recorded variants of the core operations
// - OnApplied: register asynchronous handlers for Application events
//
// Recording never alters the core contract: the supplied function runs
// exactly once, synchronously, and its result passes through unchanged.
package trace
