package crates

import (
	"fmt"
	"strconv"
)

// ReadError is returned when the input cannot be read.
type ReadError struct {
	Err error
}

func (err *ReadError) Error() string {
	return "read input: " + err.Err.Error()
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// InstructionError is returned when a line holds an instruction whose
// numbers cannot be converted to integers.
type InstructionError struct {
	Line   int    // line number in the input, 0 if unknown
	Text   string // the whole line
	Offset int    // byte offset in Text where the failure starts
	Number string // digits that failed to convert, if any
	Err    error
}

func (err *InstructionError) Error() string {
	var at string
	if err.Line > 0 {
		at = " at line " + strconv.Itoa(err.Line)
	}
	if err.Number != "" {
		return fmt.Sprintf("invalid number %q in instruction%s: %s", err.Number, at, err.Err)
	}
	return fmt.Sprintf("invalid instruction%s: %s", at, err.Err)
}

func (err *InstructionError) Unwrap() error {
	return err.Err
}

// MoveError is returned when an instruction cannot be applied to the
// current stacks.
type MoveError struct {
	Step        int // position of the instruction in the plan, 0 if unknown
	Instruction Instruction
	Reason      string
}

func (err *MoveError) Error() string {
	if err.Step > 0 {
		return fmt.Sprintf("step %d (%s): %s", err.Step, err.Instruction, err.Reason)
	}
	return fmt.Sprintf("%s: %s", err.Instruction, err.Reason)
}

type policyNotFoundError struct {
	name string
}

func (err *policyNotFoundError) Error() string {
	return fmt.Sprintf("policy not defined: %s", err.name)
}
