// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"enigma/pkg/api"
)

// VerdictWriters maps an --output format to its handler.
// Register in init() blocks from the format files.
var VerdictWriters = map[string]func(w io.Writer, v api.VerdictV1) error{}

// RegisterVerdict adds or replaces a format (last wins).
func RegisterVerdict(format string, fn func(io.Writer, api.VerdictV1) error) {
	VerdictWriters[format] = fn
}

// WriteVerdict dispatches to the writer registered for format.
func WriteVerdict(format string, w io.Writer, v api.VerdictV1) error {
	fn, ok := VerdictWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, v)
}

// Formats lists the registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(VerdictWriters))
	for k := range VerdictWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
