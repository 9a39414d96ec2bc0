package cli

import (
	"errors"
	"io"
	"os"

	"github.com/itchyny/crates"
)

// readPlan parses the named file, or the input stream if fname is empty.
func (cli *cli) readPlan(fname string) (*crates.Plan, error) {
	var r io.Reader = cli.inStream
	if fname == "" {
		fname = "<stdin>"
	} else {
		f, err := os.Open(fname)
		if err != nil {
			return nil, &inputError{fname, err}
		}
		defer f.Close()
		r = f
	}
	plan, err := crates.Parse(r)
	if err != nil {
		var ie *crates.InstructionError
		if errors.As(err, &ie) {
			return nil, &instructionError{fname, ie}
		}
		var re *crates.ReadError
		if errors.As(err, &re) {
			return nil, &inputError{fname, re.Err}
		}
		return nil, err
	}
	cli.logger.Info("parsed input", "name", fname,
		"stacks", len(plan.Stacks), "instructions", len(plan.Instructions))
	if len(plan.Stacks) == 0 {
		cli.logger.Warn("no stacks in the drawing", "name", fname)
	}
	return plan, nil
}
