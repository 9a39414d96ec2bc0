package cli

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// encoder writes reports as JSON, keeping the key order of the maps.
type encoder struct {
	w       *bytes.Buffer
	scratch bytes.Buffer
	palette *palette
	tab     bool
	indent  int
	depth   int
}

func newEncoder(p *palette, tab bool, indent int) *encoder {
	if tab {
		indent = 1
	}
	return &encoder{w: new(bytes.Buffer), palette: p, tab: tab, indent: indent}
}

func (e *encoder) marshal(v any, w io.Writer) error {
	e.encode(v, e.palette.tops)
	e.w.WriteByte('\n')
	_, err := w.Write(e.w.Bytes())
	e.w.Reset()
	return err
}

func (e *encoder) encode(v any, c *color.Color) {
	switch v := v.(type) {
	case string:
		e.encodeString(v, c)
	case []string:
		e.encodeArray(v)
	case *orderedmap.OrderedMap[string, any]:
		e.encodeMap(v)
	default:
		panic(fmt.Sprintf("invalid value: %v", v))
	}
}

// ref: encodeState#string in encoding/json
func (e *encoder) encodeString(s string, c *color.Color) {
	e.scratch.Reset()
	e.scratch.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= ' ' && b != '"' && b != '\\' && b != 0x7f {
				i++
				continue
			}
			e.scratch.WriteString(s[start:i])
			e.scratch.WriteByte('\\')
			switch b {
			case '\\', '"':
				e.scratch.WriteByte(b)
			case '\n':
				e.scratch.WriteByte('n')
			case '\r':
				e.scratch.WriteByte('r')
			case '\t':
				e.scratch.WriteByte('t')
			default:
				const hex = "0123456789abcdef"
				e.scratch.Write([]byte{'u', '0', '0', hex[b>>4], hex[b&0xF]})
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			e.scratch.WriteString(s[start:i])
			e.scratch.WriteString(`\ufffd`)
			i += size
			start = i
			continue
		}
		i += size
	}
	e.scratch.WriteString(s[start:])
	e.scratch.WriteByte('"')
	e.w.WriteString(paint(c, e.scratch.String()))
}

func (e *encoder) encodeArray(vs []string) {
	e.w.WriteByte('[')
	e.depth += e.indent
	for i, v := range vs {
		if i > 0 {
			e.w.WriteByte(',')
		}
		if e.indent != 0 {
			e.writeIndent()
		}
		e.encodeString(v, e.palette.label)
	}
	e.depth -= e.indent
	if len(vs) > 0 && e.indent != 0 {
		e.writeIndent()
	}
	e.w.WriteByte(']')
}

func (e *encoder) encodeMap(m *orderedmap.OrderedMap[string, any]) {
	e.w.WriteByte('{')
	e.depth += e.indent
	var i int
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if i > 0 {
			e.w.WriteByte(',')
		}
		i++
		if e.indent != 0 {
			e.writeIndent()
		}
		e.encodeString(pair.Key, e.palette.key)
		if e.indent == 0 {
			e.w.WriteByte(':')
		} else {
			e.w.Write([]byte{':', ' '})
		}
		e.encode(pair.Value, e.palette.tops)
	}
	e.depth -= e.indent
	if m.Len() > 0 && e.indent != 0 {
		e.writeIndent()
	}
	e.w.WriteByte('}')
}

func (e *encoder) writeIndent() {
	e.w.WriteByte('\n')
	if e.tab {
		e.w.Write(bytes.Repeat([]byte{'\t'}, e.depth))
	} else {
		e.w.Write(bytes.Repeat([]byte{' '}, e.depth))
	}
}
