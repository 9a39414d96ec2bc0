package crates

import (
	"bufio"
	"io"
	"math"
)

// Plan is a parsed input: the stacks drawn at its head and the
// instructions that follow.
type Plan struct {
	Stacks       Stacks
	Instructions []Instruction
}

// Parse reads a drawing followed by instructions from r. The reader is
// consumed once, line by line. Lines after the drawing that hold no
// instruction are skipped.
func Parse(r io.Reader) (*Plan, error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, math.MaxInt)
	d, inDrawing := newDrawing(), true
	var p Plan
	for line := 1; s.Scan(); line++ {
		if inDrawing {
			inDrawing = d.scan(s.Text())
			continue
		}
		in, ok, err := ParseInstruction(s.Text())
		if err != nil {
			if err, ok := err.(*InstructionError); ok {
				err.Line = line
			}
			return nil, err
		}
		if ok {
			p.Instructions = append(p.Instructions, in)
		}
	}
	if err := s.Err(); err != nil {
		return nil, &ReadError{err}
	}
	p.Stacks = d.stacks()
	return &p, nil
}

// Run applies the instructions to a copy of the initial stacks under the
// policy and returns the final stacks. The plan is left unchanged, so it
// can be run again under another policy.
func (p *Plan) Run(policy Policy, opts ...Option) (Stacks, error) {
	ss := p.Stacks.Clone()
	if err := newRunner(opts).run(ss, p.Instructions, policy); err != nil {
		return nil, err
	}
	return ss, nil
}
