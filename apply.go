package crates

import (
	"fmt"
	"log/slog"
)

type runner struct {
	logger *slog.Logger
	hooks  []StepHook
}

func newRunner(opts []Option) *runner {
	r := &runner{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply executes a single instruction on ss using t. The stacks are left
// untouched and a *MoveError is returned if a stack does not exist or
// holds fewer labels than requested.
func Apply(ss Stacks, in Instruction, t TransferFunc) error {
	src, dst := ss.At(in.From), ss.At(in.To)
	switch {
	case src == nil:
		return &MoveError{Instruction: in, Reason: noStack(in.From, len(ss))}
	case dst == nil:
		return &MoveError{Instruction: in, Reason: noStack(in.To, len(ss))}
	case in.Count < 0:
		return &MoveError{Instruction: in, Reason: "negative count"}
	case in.Count > src.Len():
		return &MoveError{Instruction: in, Reason: fmt.Sprintf(
			"stack %d holds %d labels", in.From, src.Len())}
	}
	t(src, dst, in.Count)
	return nil
}

func noStack(n, l int) string {
	return fmt.Sprintf("no stack %d in %d stacks", n, l)
}

func (r *runner) run(ss Stacks, ins []Instruction, p Policy) error {
	for i, in := range ins {
		if err := Apply(ss, in, p.Transfer); err != nil {
			if err, ok := err.(*MoveError); ok {
				err.Step = i + 1
			}
			return err
		}
		r.logger.Debug("applied instruction",
			"policy", p.Name, "step", i+1, "instruction", in.String(), "tops", ss.Tops())
		for _, hook := range r.hooks {
			hook(i+1, in, ss)
		}
	}
	return nil
}
