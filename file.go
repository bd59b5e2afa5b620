// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// File represents a Source backed by a file whose format is chosen by
// its extension. Only data formats are dispatched to: executable
// config (the host language's own modules) never enters through a
// path, the host evaluates it and feeds the result to [Store.Merge]
// itself.
type File struct {
	fsys fs.FS
	path string
}

// FromFile returns a source which reads the file at path within fsys.
// Supported extensions are .json, .jsonc, .yml and .yaml; anything
// else fails with an [UnsupportedFormatError] before the file is
// opened.
func FromFile(fsys fs.FS, path string) File {
	return File{fsys: fsys, path: path}
}

// UnsupportedFormatError occurs when a file source has an extension no
// format is registered for.
type UnsupportedFormatError struct {
	Ext string
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format: %q", e.Ext)
}

// Apply implements the Source interface.
func (src File) Apply(s *Store) error {
	ext := strings.ToLower(path.Ext(src.path))
	switch ext {
	case ".json", ".jsonc", ".yml", ".yaml":
	default:
		return UnsupportedFormatError{Ext: ext}
	}

	f, err := src.fsys.Open(src.path)
	if err != nil {
		return err
	}

	switch ext {
	case ".json", ".jsonc":
		return FromJson(f).Apply(s)
	default:
		return FromYaml(f).Apply(s)
	}
}
