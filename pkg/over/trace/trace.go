package trace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"

	"github.com/ib-77/over/pkg/over"
)

// Metric keys for recorder observability.
const (
	AppliedTotal = metricz.Key("over.applied.total")
)

// Span names for recorded applications.
const (
	ApplySpan = tracez.Key("over.apply")
)

// Span tags for recorded applications.
const (
	TagRecorder = tracez.Tag("over.recorder")

	// Hook event keys.
	EventApplied = hookz.Key("over.applied")
)

// Application describes one completed transform application. It is emitted
// via hookz after the supplied function returns, allowing external systems
// to track application counts and timings.
type Application struct {
	ID        uuid.UUID     // Unique id of this application
	Recorder  string        // Recorder name
	StartedAt time.Time     // When the function was invoked (UTC)
	Duration  time.Duration // How long the function ran
}

// Recorder observes transform applications without changing their contract:
// the supplied function is still called exactly once, synchronously, and its
// result (or panic) passes through untouched. The context feeds spans and
// hook emission only; no cancellation is applied at this layer.
type Recorder struct {
	name  string
	clock clockz.Clock

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[Application]
}

// New creates a Recorder with the given name.
func New(name string) *Recorder {
	registry := metricz.New()
	registry.Counter(AppliedTotal)

	return &Recorder{
		name:    name,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[Application](),
	}
}

// WithClock sets a custom clock for timestamping applications.
func (r *Recorder) WithClock(clock clockz.Clock) *Recorder {
	r.clock = clock
	return r
}

func (r *Recorder) getClock() clockz.Clock {
	if r.clock == nil {
		return clockz.RealClock
	}
	return r.clock
}

// Name returns the recorder's name.
func (r *Recorder) Name() string {
	return r.name
}

// Metrics returns the metrics registry for this recorder.
func (r *Recorder) Metrics() *metricz.Registry {
	return r.metrics
}

// Tracer returns the tracer for this recorder.
func (r *Recorder) Tracer() *tracez.Tracer {
	return r.tracer
}

// OnApplied registers a handler called after each recorded application.
// The handler runs asynchronously once the supplied function has returned.
func (r *Recorder) OnApplied(handler func(context.Context, Application) error) error {
	_, err := r.hooks.Hook(EventApplied, handler)
	return err
}

// Close gracefully shuts down observability components.
func (r *Recorder) Close() error {
	if r.tracer != nil {
		r.tracer.Close()
	}
	r.hooks.Close()
	return nil
}

func (r *Recorder) record(ctx context.Context, started time.Time) {
	r.metrics.Counter(AppliedTotal).Inc()

	_ = r.hooks.Emit(ctx, EventApplied, Application{ //nolint:errcheck
		ID:        uuid.New(),
		Recorder:  r.name,
		StartedAt: started,
		Duration:  r.getClock().Since(started),
	})
}

// Over records one by-value application through the recorder.
func Over[T, R any](ctx context.Context, r *Recorder, value T, f func(T) R) R {
	ctx, span := r.tracer.StartSpan(ctx, ApplySpan)
	defer span.Finish()
	span.SetTag(TagRecorder, r.name)

	started := r.getClock().Now()
	result := over.Over(value, f)
	r.record(ctx, started)

	return result
}

// OverRef records one by-reference application through the recorder.
func OverRef[T, R any](ctx context.Context, r *Recorder, value *T, f func(*T) R) R {
	ctx, span := r.tracer.StartSpan(ctx, ApplySpan)
	defer span.Finish()
	span.SetTag(TagRecorder, r.name)

	started := r.getClock().Now()
	result := over.OverRef(value, f)
	r.record(ctx, started)

	return result
}

// OverMut records one mutating application through the recorder.
func OverMut[T, R any](ctx context.Context, r *Recorder, value *T, f func(*T) R) R {
	ctx, span := r.tracer.StartSpan(ctx, ApplySpan)
	defer span.Finish()
	span.SetTag(TagRecorder, r.name)

	started := r.getClock().Now()
	result := over.OverMut(value, f)
	r.record(ctx, started)

	return result
}
