package agingsched

import "errors"

var (
	// ErrInvalidConfiguration is returned by [New] when the scheduler cannot be
	// constructed from the given configuration.
	ErrInvalidConfiguration = errors.New("agingsched: invalid configuration")

	// ErrInvalidArgument is returned by [Scheduler.Insert] when a task cannot be
	// represented in the scheduler.
	ErrInvalidArgument = errors.New("agingsched: invalid argument")
)
