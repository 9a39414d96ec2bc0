package crates

import (
	"maps"
	"regexp"
	"slices"
	"unicode/utf8"
)

// labelPattern matches one bracketed word character, as in "[Z]".
var labelPattern = regexp.MustCompile(`\[[\pL\pM\pN\p{Pc}]\]`)

// drawing collects labels per column while the drawing is read top down.
// Columns are keyed by the character offset of the opening bracket, so a
// column keeps its key when labels to its left take more than one byte.
type drawing struct {
	columns map[int][]Label
}

func newDrawing() *drawing {
	return &drawing{columns: make(map[int][]Label)}
}

// scan records the labels of line. It reports false when the line holds
// no bracketed label, which ends the drawing.
func (d *drawing) scan(line string) bool {
	locs := labelPattern.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return false
	}
	var offset, prev int
	for _, loc := range locs {
		offset += utf8.RuneCountInString(line[prev:loc[0]])
		prev = loc[0]
		d.columns[offset] = append(d.columns[offset], line[loc[0]+1:loc[1]-1])
	}
	return true
}

// stacks numbers the columns left to right and flips every column so the
// label drawn lowest becomes the bottom of its stack.
func (d *drawing) stacks() Stacks {
	offsets := slices.Sorted(maps.Keys(d.columns))
	ss := make(Stacks, len(offsets))
	for i, offset := range offsets {
		labels := slices.Clone(d.columns[offset])
		slices.Reverse(labels)
		ss[i] = &Stack{labels: labels}
	}
	return ss
}

// ParseDrawing reads the drawing at the head of lines and returns its
// stacks along with the number of lines consumed. The first line without
// any bracketed label ends the drawing and is consumed as well.
func ParseDrawing(lines []string) (Stacks, int) {
	d := newDrawing()
	for i, line := range lines {
		if !d.scan(line) {
			return d.stacks(), i + 1
		}
	}
	return d.stacks(), len(lines)
}
