package crates

import "fmt"

// Instruction moves Count labels from stack From to stack To.
type Instruction struct {
	Count int
	From  int
	To    int
}

func (in Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", in.Count, in.From, in.To)
}
