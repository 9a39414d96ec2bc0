package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/itchyny/crates"
)

const name = "crates"

const version = "0.1.0"

var revision = "HEAD"

const (
	exitCodeOK = iota
	exitCodeDefaultErr
	exitCodeFlagParseErr
	exitCodeInputErr
	exitCodeInstructionErr
	exitCodeMoveErr
)

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer

	outputFormat outputFormat
	outputStacks bool
	outputIndent int
	outputTab    bool
	palette      *palette
	trace        bool
	logger       *slog.Logger
}

type flagopts struct {
	Policies      []string `short:"p" long:"policy" description:"policy to run (single, bulk); repeatable"`
	OutputRaw     bool     `short:"r" long:"raw" description:"output the top labels only"`
	OutputJSON    bool     `short:"j" long:"json" description:"output in JSON format"`
	OutputYAML    bool     `long:"yaml" description:"output in YAML format"`
	OutputStacks  bool     `short:"s" long:"stacks" description:"include the final stacks"`
	OutputIndent  *int     `long:"indent" description:"number of spaces for JSON indentation"`
	OutputTab     bool     `long:"tab" description:"use tabs for JSON indentation"`
	OutputCompact bool     `short:"c" long:"compact" description:"compact JSON output"`
	OutputColor   bool     `short:"C" long:"color-output" description:"colorize output even if piped"`
	OutputNoColor bool     `short:"M" long:"monochrome-output" description:"stop colorizing output"`
	Trace         bool     `long:"trace" description:"print the top labels after every step"`
	LogLevel      string   `long:"log-level" description:"log level (debug, info, warn, error)"`
	LogFile       string   `long:"log-file" description:"append JSON logs to the file"`
	ConfigFile    string   `long:"config" description:"load options from the HCL file"`
	Version       bool     `short:"v" long:"version" description:"display version information"`
	Help          bool     `short:"h" long:"help" description:"display this help information"`
}

func (cli *cli) run(args []string) int {
	if err := cli.runInternal(args); err != nil {
		fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		if err, ok := err.(interface{ ExitCode() int }); ok {
			return err.ExitCode()
		}
		return exitCodeDefaultErr
	}
	return exitCodeOK
}

func (cli *cli) runInternal(args []string) (err error) {
	var opts flagopts
	if args, err = parseFlags(args, &opts); err != nil {
		return &flagParseError{err}
	}
	if opts.Help {
		fmt.Fprintf(cli.outStream, `%[1]s - replay crate moves over a stack drawing

Version: %s (rev: %s/%s)

Synopsis:
  %% %[1]s input.txt
  %% %[1]s --json --stacks < input.txt

Usage:
  %[1]s [OPTIONS] [FILE]

`, name, version, revision, runtime.Version())
		fmt.Fprint(cli.outStream, formatFlags(&opts))
		return nil
	}
	if opts.Version {
		fmt.Fprintf(cli.outStream, "%s %s (rev: %s/%s)\n", name, version, revision, runtime.Version())
		return nil
	}
	if len(args) > 1 {
		return &flagParseError{fmt.Errorf("too many arguments: %q", args[1:])}
	}

	if opts.ConfigFile == "" {
		opts.ConfigFile = os.Getenv("CRATES_CONFIG")
	}
	if opts.ConfigFile != "" {
		cfg, err := loadConfig(opts.ConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.merge(&opts); err != nil {
			return &configError{opts.ConfigFile, err}
		}
	}

	policies, err := lookupPolicies(opts.Policies)
	if err != nil {
		return &flagParseError{err}
	}
	if err := cli.setOutput(&opts); err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(opts.LogLevel, cli.errStream, opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLogger()
	cli.logger = logger

	var fname string
	if len(args) > 0 && args[0] != "-" {
		fname = args[0]
	}
	plan, err := cli.readPlan(fname)
	if err != nil {
		return err
	}

	results := orderedmap.New[string, crates.Stacks]()
	for _, p := range policies {
		ss, err := cli.runPolicy(plan, p)
		if err != nil {
			return &moveError{p.Name, err}
		}
		results.Set(p.Name, ss)
	}
	return cli.printResults(results)
}

func (cli *cli) runPolicy(plan *crates.Plan, p crates.Policy) (crates.Stacks, error) {
	opts := []crates.Option{crates.WithLogger(cli.logger)}
	if cli.trace {
		opts = append(opts, crates.WithStepHook(func(step int, in crates.Instruction, ss crates.Stacks) {
			fmt.Fprintf(cli.errStream, "trace: %s #%d %s => %s\n",
				p.Name, step, in, ss.Tops())
		}))
	}
	ss, err := plan.Run(p, opts...)
	if err != nil {
		return nil, err
	}
	cli.logger.Info("finished policy", "policy", p.Name, "tops", ss.Tops())
	return ss, nil
}

// lookupPolicies resolves policy names in the given order, accepting
// comma separated lists and skipping duplicates.
func lookupPolicies(names []string) ([]crates.Policy, error) {
	if len(names) == 0 {
		return crates.Policies(), nil
	}
	var policies []crates.Policy
	seen := map[string]struct{}{}
	for _, n := range names {
		for n := range strings.SplitSeq(n, ",") {
			p, err := crates.LookupPolicy(strings.TrimSpace(n))
			if err != nil {
				return nil, err
			}
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			policies = append(policies, p)
		}
	}
	return policies, nil
}
