// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/substrate/internal/try"

	"github.com/tidwall/jsonc"
)

// Json represents a Source where its underlying format is JSON.
// Comments and trailing commas are tolerated, so .jsonc style files
// parse as well.
type Json struct {
	r io.Reader
}

// FromJson returns a source which will apply its config from JSON
// values parsed from the given io.Reader.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src Json) Apply(s *Store) (err error) {
	c, _ := src.r.(io.Closer)
	defer try.Close(&err, c)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = json.Unmarshal(jsonc.ToJSON(b), &m)
	if err != nil {
		return InvalidJsonError{cause: err}
	}

	s.Merge(m)
	return nil
}
