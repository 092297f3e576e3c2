package agingsched

import "go.uber.org/zap"

// Options holds configuration options for the [Scheduler].
type Options[T comparable] struct {
	Logger  *zap.Logger
	Metrics MetricsHook[T]
}

// Option is a function that configures [Options].
type Option[T comparable] func(*Options[T])

// WithLogger sets the logger for the [Scheduler]. A nil logger disables
// logging.
func WithLogger[T comparable](logger *zap.Logger) Option[T] {
	return func(o *Options[T]) {
		o.Logger = logger
	}
}

// WithMetricsHook sets the metrics hook for the [Scheduler].
func WithMetricsHook[T comparable](hook MetricsHook[T]) Option[T] {
	return func(o *Options[T]) {
		o.Metrics = hook
	}
}
