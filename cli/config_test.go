package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "crates.hcl")
	require.NoError(t, os.WriteFile(fname, []byte(src), 0o644))
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeConfig(t, `
policies  = ["bulk", "single"]
output    = "yaml"
stacks    = true
indent    = 3
log_level = "debug"
color     = false
trace     = true
`)
	cfg, err := loadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, []string{"bulk", "single"}, cfg.Policies)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Stacks)
	require.NotNil(t, cfg.Indent)
	assert.Equal(t, 3, *cfg.Indent)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
	assert.True(t, cfg.Trace)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &fileConfig{}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, src := range []string{
		`policies = [`,
		`unknown = 1`,
		`indent = "wide"`,
	} {
		t.Run(src, func(t *testing.T) {
			fname := writeConfig(t, src)
			_, err := loadConfig(fname)
			var e *configError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, fname, e.fname)
			assert.Equal(t, exitCodeInputErr, e.ExitCode())
		})
	}
}

func TestFileConfigMerge(t *testing.T) {
	indent, color := 5, true
	cfg := &fileConfig{
		Policies: []string{"bulk"},
		Output:   "json",
		Stacks:   true,
		Indent:   &indent,
		LogLevel: "info",
		Color:    &color,
	}

	var opts flagopts
	require.NoError(t, cfg.merge(&opts))
	assert.Equal(t, flagopts{
		Policies:     []string{"bulk"},
		OutputJSON:   true,
		OutputStacks: true,
		OutputIndent: &indent,
		LogLevel:     "info",
		OutputColor:  true,
	}, opts)

	flagIndent := 1
	opts = flagopts{
		Policies:      []string{"single"},
		OutputRaw:     true,
		OutputIndent:  &flagIndent,
		LogLevel:      "error",
		OutputNoColor: true,
	}
	require.NoError(t, cfg.merge(&opts))
	assert.Equal(t, flagopts{
		Policies:      []string{"single"},
		OutputRaw:     true,
		OutputStacks:  true,
		OutputIndent:  &flagIndent,
		LogLevel:      "error",
		OutputNoColor: true,
	}, opts)

	assert.EqualError(t, (&fileConfig{Output: "xml"}).merge(&flagopts{}), `invalid output format: "xml"`)
}
