// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"varheat/internal/matrix"
)

// WriteText prints one TSV line per selected row, in rank order.
func WriteText(w io.Writer, stats []matrix.RowStat, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for i, st := range stats {
		if _, err := fmt.Fprintln(w, FormatRowTSV(i+1, st)); err != nil {
			return err
		}
	}
	return nil
}
