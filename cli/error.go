package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/itchyny/crates"
)

type flagParseError struct {
	err error
}

func (err *flagParseError) Error() string {
	return err.err.Error()
}

func (*flagParseError) ExitCode() int {
	return exitCodeFlagParseErr
}

type inputError struct {
	fname string
	err   error
}

func (err *inputError) Error() string {
	e := err.err
	if pe, ok := e.(*fs.PathError); ok {
		e = pe.Err
	}
	return fmt.Sprintf("cannot read %s: %s", err.fname, e)
}

func (err *inputError) Unwrap() error {
	return err.err
}

func (*inputError) ExitCode() int {
	return exitCodeInputErr
}

type configError struct {
	fname string
	err   error
}

func (err *configError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", err.fname, err.err)
}

func (err *configError) Unwrap() error {
	return err.err
}

func (*configError) ExitCode() int {
	return exitCodeInputErr
}

type instructionError struct {
	fname string
	err   *crates.InstructionError
}

func (err *instructionError) Error() string {
	e := err.err
	msg := e.Err.Error()
	if e.Number != "" {
		msg = fmt.Sprintf("invalid number %q: %s", e.Number, msg)
	}
	linestr, column := lineWindow(e.Text, e.Offset)
	return fmt.Sprintf("invalid instruction: %s:%d\n%s  %s",
		err.fname, e.Line, formatLineInfo(linestr, e.Line, column), msg)
}

func (err *instructionError) Unwrap() error {
	return err.err
}

func (*instructionError) ExitCode() int {
	return exitCodeInstructionErr
}

type moveError struct {
	policy string
	err    error
}

func (err *moveError) Error() string {
	return fmt.Sprintf("cannot apply %s policy: %s", err.policy, err.err)
}

func (err *moveError) Unwrap() error {
	return err.err
}

func (err *moveError) ExitCode() int {
	var e *crates.MoveError
	if errors.As(err.err, &e) {
		return exitCodeMoveErr
	}
	return exitCodeDefaultErr
}

// lineWindow cuts a line around the byte offset so that long lines fit in
// the error message, and returns the display column of the offset.
func lineWindow(linestr string, offset int) (string, int) {
	offset = min(max(offset, 0), len(linestr))
	if offset > 48 {
		skip := len(trimLastInvalidRune(linestr[:offset-48]))
		linestr = linestr[skip:]
		offset -= skip
	}
	linestr = trimLastInvalidRune(linestr[:min(64, len(linestr))])
	if offset < len(linestr) {
		offset = len(trimLastInvalidRune(linestr[:offset]))
	} else {
		offset = len(linestr)
	}
	return linestr, runewidth.StringWidth(linestr[:offset])
}

func trimLastInvalidRune(s string) string {
	for i := len(s) - 1; i >= 0 && i > len(s)-utf8.UTFMax; i-- {
		if b := s[i]; b < utf8.RuneSelf {
			return s[:i+1]
		} else if utf8.RuneStart(b) {
			if r, _ := utf8.DecodeRuneInString(s[i:]); r == utf8.RuneError {
				return s[:i]
			}
			break
		}
	}
	return s
}

func formatLineInfo(linestr string, line, column int) string {
	l := strconv.Itoa(line)
	return fmt.Sprintf("    %s | %s\n    %*c", l, linestr, column+len(l)+4, '^')
}
