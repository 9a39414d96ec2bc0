package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func monochrome() *palette {
	p := defaultPalette()
	p.enable(false)
	return p
}

func TestEncoder(t *testing.T) {
	stacks := orderedmap.New[string, any]()
	stacks.Set("2", []string{"A", "B"})
	stacks.Set("1", []string{})
	m := orderedmap.New[string, any]()
	m.Set("tops", "B")
	m.Set("stacks", stacks)
	m.Set("quoted", "a\"b\\c\n\t\x01\x7f\xff日本")

	testCases := []struct {
		name     string
		tab      bool
		indent   int
		expected string
	}{
		{
			name:   "compact",
			indent: 0,
			expected: `{"tops":"B","stacks":{"2":["A","B"],"1":[]},` +
				`"quoted":"a\"b\\c\n\t\u0001\u007f\ufffd日本"}` + "\n",
		},
		{
			name:   "indent",
			indent: 2,
			expected: `{
  "tops": "B",
  "stacks": {
    "2": [
      "A",
      "B"
    ],
    "1": []
  },
  "quoted": "a\"b\\c\n\t\u0001\u007f\ufffd日本"
}
`,
		},
		{
			name:     "tab",
			tab:      true,
			expected: "{\n\t\"tops\": \"B\",\n\t\"stacks\": {\n\t\t\"2\": [\n\t\t\t\"A\",\n\t\t\t\"B\"\n\t\t],\n\t\t\"1\": []\n\t},\n\t\"quoted\": \"a\\\"b\\\\c\\n\\t\\u0001\\u007f\\ufffd日本\"\n}\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newEncoder(monochrome(), tc.tab, tc.indent).marshal(m, &buf))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestEncoderEmptyMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newEncoder(monochrome(), false, 2).marshal(orderedmap.New[string, any](), &buf))
	assert.Equal(t, "{}\n", buf.String())
}

func TestEncoderColor(t *testing.T) {
	p := &palette{key: color.New(color.FgRed), tops: color.New(color.FgGreen), label: color.New(color.FgYellow)}
	p.enable(true)
	stacks := orderedmap.New[string, any]()
	stacks.Set("1", []string{"A"})
	m := orderedmap.New[string, any]()
	m.Set("tops", "A")
	m.Set("stacks", stacks)

	var buf bytes.Buffer
	require.NoError(t, newEncoder(p, false, 0).marshal(m, &buf))
	assert.Equal(t, "{\x1b[31m\"tops\"\x1b[0m:\x1b[32m\"A\"\x1b[0m,"+
		"\x1b[31m\"stacks\"\x1b[0m:{\x1b[31m\"1\"\x1b[0m:[\x1b[33m\"A\"\x1b[0m]}}\n", buf.String())
}

func TestEncoderInvalidValue(t *testing.T) {
	m := orderedmap.New[string, any]()
	m.Set("x", 1.5)
	assert.PanicsWithValue(t, "invalid value: 1.5", func() {
		_ = newEncoder(monochrome(), false, 0).marshal(m, &strings.Builder{})
	})
	m.Set("x", 2)
	assert.PanicsWithValue(t, "invalid value: 2", func() {
		_ = newEncoder(monochrome(), false, 0).marshal(m, &strings.Builder{})
	})
}
