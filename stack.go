package crates

import "strings"

// Label names a single item. It is the character drawn between brackets.
type Label = string

// Stack holds labels from bottom to top.
type Stack struct {
	labels []Label
}

// NewStack creates a stack from labels ordered bottom to top.
func NewStack(labels ...Label) *Stack {
	return &Stack{labels: append([]Label(nil), labels...)}
}

// Len returns the number of labels on the stack.
func (s *Stack) Len() int {
	return len(s.labels)
}

// Top returns the topmost label, or false if the stack is empty.
func (s *Stack) Top() (Label, bool) {
	if len(s.labels) == 0 {
		return "", false
	}
	return s.labels[len(s.labels)-1], true
}

// Labels returns a copy of the labels from bottom to top.
func (s *Stack) Labels() []Label {
	return append([]Label{}, s.labels...)
}

// Push puts labels on top of the stack, the last one ending up topmost.
func (s *Stack) Push(labels ...Label) {
	s.labels = append(s.labels, labels...)
}

// Take removes the top n labels and returns them bottom to top.
// It panics if n is negative or exceeds Len.
func (s *Stack) Take(n int) []Label {
	i := len(s.labels) - n
	run := append([]Label{}, s.labels[i:]...)
	s.labels = s.labels[:i]
	return run
}

func (s *Stack) String() string {
	return strings.Join(s.labels, " ")
}

// Stacks is the collection of stacks of a drawing. Stacks are numbered
// from 1, the leftmost one in the drawing.
type Stacks []*Stack

// At returns the stack numbered n, or nil if there is no such stack.
func (ss Stacks) At(n int) *Stack {
	if n < 1 || n > len(ss) {
		return nil
	}
	return ss[n-1]
}

// Count returns the total number of labels on all the stacks.
func (ss Stacks) Count() (n int) {
	for _, s := range ss {
		n += s.Len()
	}
	return
}

// Clone returns a deep copy of the stacks.
func (ss Stacks) Clone() Stacks {
	xs := make(Stacks, len(ss))
	for i, s := range ss {
		xs[i] = NewStack(s.labels...)
	}
	return xs
}

// Tops concatenates the top label of every stack in stack order.
// Empty stacks contribute nothing.
func (ss Stacks) Tops() string {
	var sb strings.Builder
	for _, s := range ss {
		if l, ok := s.Top(); ok {
			sb.WriteString(l)
		}
	}
	return sb.String()
}

// Labels returns the labels of every stack, bottom to top.
func (ss Stacks) Labels() [][]Label {
	xs := make([][]Label, len(ss))
	for i, s := range ss {
		xs[i] = s.Labels()
	}
	return xs
}
