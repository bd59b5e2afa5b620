// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		name     string
		chain    Chain
		expected string
	}{
		{
			name:     "empty chain",
			chain:    Chain{},
			expected: "",
		},
		{
			name:     "single name",
			chain:    Chain{Name("app")},
			expected: "app",
		},
		{
			name:     "nested names",
			chain:    Chain{Name("app"), Name("db"), Name("host")},
			expected: "app.db.host",
		},
		{
			name:     "nested chains",
			chain:    Chain{Chain{Name("app"), Name("db")}, Name("host")},
			expected: "app.db.host",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.chain.Key())
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected Chain
	}{
		{
			name:     "empty path",
			path:     "",
			expected: Chain{},
		},
		{
			name:     "single segment",
			path:     "app",
			expected: Chain{Name("app")},
		},
		{
			name:     "dot separated",
			path:     "app.db.host",
			expected: Chain{Name("app"), Name("db"), Name("host")},
		},
		{
			name:     "colon separated",
			path:     "app:db:host",
			expected: Chain{Name("app"), Name("db"), Name("host")},
		},
		{
			name:     "mixed separators",
			path:     "app:db.host",
			expected: Chain{Name("app"), Name("db"), Name("host")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Parse(tc.path))
		})
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "a.b.c", Normalize("a:b:c"))
	require.Equal(t, "a.b.c", Normalize("a.b.c"))
}
