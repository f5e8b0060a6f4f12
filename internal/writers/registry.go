// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"varheat/internal/matrix"
)

// SelectionWriter serializes ranked row statistics. header is honored by
// formats that have one.
type SelectionWriter func(w io.Writer, stats []matrix.RowStat, header bool) error

// SelectionWriters maps format → handler. Populated in init() by selection.go.
var SelectionWriters = map[string]SelectionWriter{}

// RegisterSelection adds or replaces (last-wins) the writer for format.
func RegisterSelection(format string, fn SelectionWriter) { SelectionWriters[format] = fn }

// SelectionFormats lists the registered formats, sorted.
func SelectionFormats() []string {
	out := make([]string, 0, len(SelectionWriters))
	for k := range SelectionWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteSelection dispatches to the writer registered for format.
func WriteSelection(format string, w io.Writer, stats []matrix.RowStat, header bool) error {
	fn, ok := SelectionWriters[format]
	if !ok {
		return fmt.Errorf("unknown selection format %q (no writer registered)", format)
	}
	return fn(w, stats, header)
}
