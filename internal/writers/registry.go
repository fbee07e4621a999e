// Package writers emits scored pairs in the supported output formats.
package writers

import (
	"fmt"
	"io"

	"loopcall-core/pairs"
)

// WriteFunc renders a full batch of pairs. header applies to formats that
// have one.
type WriteFunc func(w io.Writer, ps []pairs.Pair, header bool) error

// registry maps format name to writer. Writer files register themselves in
// init().
var registry = map[string]WriteFunc{}

// Register installs a writer for a format (last registration wins).
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	return out
}

// Write dispatches to the registered writer.
func Write(format string, w io.Writer, ps []pairs.Pair, header bool) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, ps, header)
}
