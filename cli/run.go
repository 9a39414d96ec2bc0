package cli

import (
	"bytes"
	"io"
	"os"
)

// Config holds the streams a crates invocation reads the plan from and
// writes its report and diagnostics to. A nil Stdin reads as an empty
// plan, and a nil Stdout or Stderr drops whatever would be written there.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run replays the plan selected by args, which exclude the program name,
// and returns the process exit code.
func (cfg *Config) Run(args []string) int {
	return (&cli{
		inStream:  orReader(cfg.Stdin),
		outStream: orDiscard(cfg.Stdout),
		errStream: orDiscard(cfg.Stderr),
	}).run(args)
}

func orReader(r io.Reader) io.Reader {
	if r == nil {
		return bytes.NewReader(nil)
	}
	return r
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// Run is the entry point of cmd/crates.
func Run() int {
	cfg := Config{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	return cfg.Run(os.Args[1:])
}
