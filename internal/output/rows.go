// internal/output/rows.go
package output

import (
	"fmt"
	"math"
	"strconv"

	"varheat/internal/matrix"
)

// FormatFloat renders v with up to six significant digits, or NA.
func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func scoreString(s matrix.Score) string {
	if !s.Defined {
		return NA
	}
	return FormatFloat(s.Value)
}

// FormatRowTSV returns the report columns for st at 1-based rank (no trailing newline).
func FormatRowTSV(rank int, st matrix.RowStat) string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%d\t%d",
		st.Label, rank,
		scoreString(st.Score), FormatFloat(st.Mean), FormatFloat(st.Stdev),
		st.Valid, st.Missing,
	)
}
