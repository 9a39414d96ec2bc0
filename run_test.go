package crates

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		policy   Policy
		expected string
		err      string
	}{
		{
			name:     "sample single",
			src:      sample,
			policy:   SingleItem,
			expected: "CMZ",
		},
		{
			name:     "sample bulk",
			src:      sample,
			policy:   Bulk,
			expected: "MCD",
		},
		{
			name:     "no instructions",
			src:      "[A] [B]\n 1   2\n",
			policy:   Bulk,
			expected: "AB",
		},
		{
			name:     "empty stack in the middle",
			src:      "[A] [B] [C]\n 1   2   3\n\nmove 1 from 2 to 3\n",
			policy:   SingleItem,
			expected: "AB",
		},
		{
			name:     "back and forth",
			src:      "[A] [B]\n 1   2\n\nmove 1 from 1 to 2\nmove 2 from 2 to 1\nmove 2 from 1 to 2\nmove 2 from 2 to 1\n",
			policy:   Bulk,
			expected: "A",
		},
		{
			name:   "state violation",
			src:    "[A] [B]\n 1   2\n\nmove 2 from 1 to 2\n",
			policy: SingleItem,
			err:    "step 1 (move 2 from 1 to 2): stack 1 holds 1 labels",
		},
		{
			name:   "parse error",
			src:    "[A] [B]\n 1   2\n\nmove 1 from ١ to 2\n",
			policy: SingleItem,
			err:    `invalid number "١" in instruction at line 4: invalid syntax`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Run(strings.NewReader(tc.src), tc.policy)
			if tc.err == "" {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			} else {
				assert.EqualError(t, err, tc.err)
				assert.Equal(t, "", got)
			}
		})
	}
}

func TestRunPolicyNotFound(t *testing.T) {
	_, err := LookupPolicy("")
	var e *policyNotFoundError
	assert.True(t, errors.As(err, &e))
}
