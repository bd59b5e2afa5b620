// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	writeFile := func(t *testing.T, name, data string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		err := os.WriteFile(path, []byte(data), 0o600)
		require.Nil(t, err)
		return path
	}

	t.Run("will merge files, env and overrides in precedence order", func(t *testing.T) {
		cfgFile := writeFile(t, "app.yaml", "app:\n  name: from-file\n  port: 8080\n")

		var buf bytes.Buffer
		err := render(&buf, renderConfig{
			files:    []string{cfgFile},
			env:      true,
			envDelim: "__",
			sets:     []string{"--app.name=from-set"},
			path:     "app.name",
			out:      "yaml",
		}, []string{"APP__PORT=9090"})
		require.Nil(t, err)

		assert.Equal(t, "from-set\n", buf.String())
	})

	t.Run("will bind the environment as the env namespace", func(t *testing.T) {
		cfgFile := writeFile(t, "app.yaml", "region: ${env:REGION, local}\n")

		var buf bytes.Buffer
		err := render(&buf, renderConfig{
			files: []string{cfgFile},
			path:  "region",
			out:   "yaml",
		}, []string{"REGION=eu-west-1"})
		require.Nil(t, err)

		assert.Equal(t, "eu-west-1\n", buf.String())
	})

	t.Run("will emit json", func(t *testing.T) {
		cfgFile := writeFile(t, "app.json", `{"app": {"name": "demo"}}`)

		var buf bytes.Buffer
		err := render(&buf, renderConfig{
			files: []string{cfgFile},
			out:   "json",
		}, nil)
		require.Nil(t, err)

		assert.JSONEq(t, `{"app": {"name": "demo"}}`, buf.String())
	})

	t.Run("will reject an unknown output format", func(t *testing.T) {
		err := render(&bytes.Buffer{}, renderConfig{out: "toml"}, nil)
		require.NotNil(t, err)
	})

	t.Run("will fail on an unsupported config extension", func(t *testing.T) {
		cfgFile := writeFile(t, "app.toml", `name = "nope"`)

		err := render(&bytes.Buffer{}, renderConfig{
			files: []string{cfgFile},
			out:   "yaml",
		}, nil)
		require.NotNil(t, err)
	})
}
