// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Apply(t *testing.T) {
	fsys := fstest.MapFS{
		"app.yaml": &fstest.MapFile{
			Data: []byte("app:\n  name: from-yaml\n"),
		},
		"app.json": &fstest.MapFile{
			Data: []byte(`{"app": {"name": "from-json"}}`),
		},
		"app.jsonc": &fstest.MapFile{
			Data: []byte("{\n  // the app name\n  \"app\": {\"name\": \"from-jsonc\"},\n}"),
		},
		"app.toml": &fstest.MapFile{
			Data: []byte(`name = "nope"`),
		},
	}

	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "yaml by extension",
			path:     "app.yaml",
			expected: "from-yaml",
		},
		{
			name:     "json by extension",
			path:     "app.json",
			expected: "from-json",
		},
		{
			name:     "jsonc with comments and trailing commas",
			path:     "app.jsonc",
			expected: "from-jsonc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Read(FromFile(fsys, tc.path))
			require.Nil(t, err)
			require.Equal(t, tc.expected, store.Get("app.name"))
		})
	}

	t.Run("will fail on an unsupported extension", func(t *testing.T) {
		_, err := Read(FromFile(fsys, "app.toml"))

		var ferr UnsupportedFormatError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, ".toml", ferr.Ext)
		assert.NotEmpty(t, ferr.Error())
	})

	t.Run("will fail on a missing file", func(t *testing.T) {
		_, err := Read(FromFile(fsys, "missing.yaml"))
		require.NotNil(t, err)
	})
}
