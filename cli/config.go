package cli

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the layout of the HCL config file. All attributes are
// optional, and the flags given on the command line take precedence.
//
//	policies  = ["bulk"]
//	output    = "json"
//	stacks    = true
//	indent    = 4
//	log_level = "info"
//	color     = false
type fileConfig struct {
	Policies []string `hcl:"policies,optional"`
	Output   string   `hcl:"output,optional"`
	Stacks   bool     `hcl:"stacks,optional"`
	Indent   *int     `hcl:"indent,optional"`
	LogLevel string   `hcl:"log_level,optional"`
	Color    *bool    `hcl:"color,optional"`
	Trace    bool     `hcl:"trace,optional"`
}

func loadConfig(fname string) (*fileConfig, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(fname)
	if diags.HasErrors() {
		return nil, &configError{fname, diags}
	}
	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, &configError{fname, diags}
	}
	return &cfg, nil
}

func (cfg *fileConfig) merge(opts *flagopts) error {
	if len(opts.Policies) == 0 {
		opts.Policies = cfg.Policies
	}
	if !opts.OutputRaw && !opts.OutputJSON && !opts.OutputYAML {
		switch cfg.Output {
		case "", "text":
		case "raw":
			opts.OutputRaw = true
		case "json":
			opts.OutputJSON = true
		case "yaml":
			opts.OutputYAML = true
		default:
			return fmt.Errorf("invalid output format: %q", cfg.Output)
		}
	}
	opts.OutputStacks = opts.OutputStacks || cfg.Stacks
	opts.Trace = opts.Trace || cfg.Trace
	if opts.OutputIndent == nil {
		opts.OutputIndent = cfg.Indent
	}
	if opts.LogLevel == "" {
		opts.LogLevel = cfg.LogLevel
	}
	if cfg.Color != nil && !opts.OutputColor && !opts.OutputNoColor {
		opts.OutputColor, opts.OutputNoColor = *cfg.Color, !*cfg.Color
	}
	return nil
}
