package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// palette holds the colors of the output. A nil color leaves text as is.
type palette struct {
	key   *color.Color // policy names, object keys and stack numbers
	tops  *color.Color // top labels
	label *color.Color // labels in the final stacks
}

func defaultPalette() *palette {
	return &palette{
		key:   color.New(color.FgBlue, color.Bold),
		tops:  color.New(color.FgGreen),
		label: color.New(color.FgYellow),
	}
}

func validColor(x string) bool {
	var num bool
	for _, c := range x {
		if '0' <= c && c <= '9' {
			num = true
		} else if c == ';' && num {
			num = false
		} else {
			return false
		}
	}
	return num || x == ""
}

func parseColor(x string) *color.Color {
	if x == "" {
		return nil
	}
	var attrs []color.Attribute
	for s := range strings.SplitSeq(x, ";") {
		n, _ := strconv.Atoi(s)
		attrs = append(attrs, color.Attribute(n))
	}
	return color.New(attrs...)
}

// setColors overrides the colors by SGR parameters separated by colons,
// in the order of key, tops and label. Missing entries disable the color.
func (p *palette) setColors(colors string) error {
	targets := []**color.Color{&p.key, &p.tops, &p.label}
	xs := strings.Split(colors, ":")
	if len(xs) > len(targets) {
		return fmt.Errorf("too many colors: %q", colors)
	}
	for i, target := range targets {
		var x string
		if i < len(xs) {
			x = xs[i]
		}
		if !validColor(x) {
			return fmt.Errorf("invalid color: %q", x)
		}
		*target = parseColor(x)
	}
	return nil
}

func (p *palette) enable(enabled bool) {
	for _, c := range []*color.Color{p.key, p.tops, p.label} {
		if c == nil {
			continue
		}
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// colorEnabled reports whether the output should be colored. The flags win
// over NO_COLOR, which wins over terminal detection.
func colorEnabled(opts *flagopts, w io.Writer) bool {
	if opts.OutputNoColor {
		return false
	}
	if opts.OutputColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func newPalette(opts *flagopts, w io.Writer) (*palette, error) {
	p := defaultPalette()
	if colors := os.Getenv("CRATES_COLORS"); colors != "" {
		if err := p.setColors(colors); err != nil {
			return nil, err
		}
	}
	p.enable(colorEnabled(opts, w))
	return p, nil
}
