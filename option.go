package crates

import "log/slog"

// Option configures a run of a plan.
type Option func(*runner)

// StepHook is called after every applied instruction with its 1-based
// position and the stacks at that point. The stacks must not be retained.
type StepHook func(step int, in Instruction, ss Stacks)

// WithLogger is an option to log every applied instruction at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

// WithStepHook is an option to observe the stacks after every step.
func WithStepHook(hook StepHook) Option {
	return func(r *runner) {
		r.hooks = append(r.hooks, hook)
	}
}
