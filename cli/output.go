package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/itchyny/crates"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputRaw
	outputJSON
	outputYAML
)

func (cli *cli) setOutput(opts *flagopts) error {
	var formats []string
	if opts.OutputRaw {
		cli.outputFormat = outputRaw
		formats = append(formats, "--raw")
	}
	if opts.OutputJSON {
		cli.outputFormat = outputJSON
		formats = append(formats, "--json")
	}
	if opts.OutputYAML {
		cli.outputFormat = outputYAML
		formats = append(formats, "--yaml")
	}
	if len(formats) > 1 {
		return &flagParseError{fmt.Errorf("cannot use %s together", strings.Join(formats, " and "))}
	}
	cli.outputStacks = opts.OutputStacks
	cli.outputTab = opts.OutputTab
	cli.outputIndent = 2
	if opts.OutputIndent != nil {
		if *opts.OutputIndent > 7 {
			return &flagParseError{errors.New("cannot indent more than 7 characters")}
		} else if *opts.OutputIndent < 0 {
			return &flagParseError{errors.New("cannot indent less than 0 characters")}
		}
		cli.outputIndent = *opts.OutputIndent
	}
	if opts.OutputCompact {
		cli.outputIndent = 0
		cli.outputTab = false
	}
	cli.trace = opts.Trace
	p, err := newPalette(opts, cli.outStream)
	if err != nil {
		return &flagParseError{err}
	}
	cli.palette = p
	return nil
}

// report lays out the results for JSON and YAML. Without the stacks, each
// policy maps to its top labels. With them, each policy maps to an object
// holding the tops and the stacks keyed by their 1-based numbers.
func (cli *cli) report(results *orderedmap.OrderedMap[string, crates.Stacks]) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](results.Len()))
	for pair := results.Oldest(); pair != nil; pair = pair.Next() {
		if !cli.outputStacks {
			m.Set(pair.Key, pair.Value.Tops())
			continue
		}
		stacks := orderedmap.New[string, any]()
		for i, labels := range pair.Value.Labels() {
			stacks.Set(strconv.Itoa(i+1), labels)
		}
		r := orderedmap.New[string, any]()
		r.Set("tops", pair.Value.Tops())
		r.Set("stacks", stacks)
		m.Set(pair.Key, r)
	}
	return m
}

func (cli *cli) printResults(results *orderedmap.OrderedMap[string, crates.Stacks]) error {
	var bs []byte
	var err error
	switch cli.outputFormat {
	case outputRaw:
		bs = cli.formatRaw(results)
	case outputJSON:
		var buf bytes.Buffer
		err = newEncoder(cli.palette, cli.outputTab, cli.outputIndent).marshal(cli.report(results), &buf)
		bs = buf.Bytes()
	case outputYAML:
		bs, err = marshalYAML(cli.report(results))
	default:
		bs = cli.formatText(results)
	}
	if err != nil {
		return err
	}
	_, err = cli.outStream.Write(bs)
	return err
}

func (cli *cli) formatRaw(results *orderedmap.OrderedMap[string, crates.Stacks]) []byte {
	var buf bytes.Buffer
	for pair := results.Oldest(); pair != nil; pair = pair.Next() {
		buf.WriteString(pair.Value.Tops())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (cli *cli) formatText(results *orderedmap.OrderedMap[string, crates.Stacks]) []byte {
	p := cli.palette
	var buf bytes.Buffer
	for pair := results.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&buf, "%s: %s\n", paint(p.key, pair.Key), paint(p.tops, pair.Value.Tops()))
		if !cli.outputStacks {
			continue
		}
		for i, s := range pair.Value {
			fmt.Fprintf(&buf, "  %s:", paint(p.key, strconv.Itoa(i+1)))
			for _, l := range s.Labels() {
				buf.WriteByte(' ')
				buf.WriteString(paint(p.label, l))
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
