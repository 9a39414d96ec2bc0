package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack("A", "B")
	assert.Equal(t, 2, s.Len())
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "B", top)

	s.Push("C", "D")
	assert.Equal(t, []Label{"A", "B", "C", "D"}, s.Labels())
	assert.Equal(t, []Label{"C", "D"}, s.Take(2))
	assert.Equal(t, []Label{"A", "B"}, s.Labels())
	assert.Equal(t, []Label{}, s.Take(0))
	assert.Equal(t, []Label{"A", "B"}, s.Take(2))

	_, ok = s.Top()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Panics(t, func() { s.Take(1) })
}

func TestStackTakeDoesNotAlias(t *testing.T) {
	s := NewStack("A", "B", "C")
	run := s.Take(2)
	s.Push("X", "Y")
	assert.Equal(t, []Label{"B", "C"}, run)
}

func TestStacks(t *testing.T) {
	ss := Stacks{NewStack("Z", "N"), NewStack(), NewStack("P")}
	assert.Nil(t, ss.At(0))
	assert.Nil(t, ss.At(4))
	assert.Same(t, ss[0], ss.At(1))
	assert.Equal(t, 3, ss.Count())
	assert.Equal(t, "NP", ss.Tops())
	assert.Equal(t, [][]Label{{"Z", "N"}, {}, {"P"}}, ss.Labels())

	xs := ss.Clone()
	xs.At(1).Push("Q")
	assert.Equal(t, "QP", xs.Tops())
	assert.Equal(t, "NP", ss.Tops())
}

func TestStacksTopsEmpty(t *testing.T) {
	assert.Equal(t, "", Stacks{}.Tops())
	assert.Equal(t, "", Stacks{NewStack(), NewStack()}.Tops())
}
