// internal/output/json.go
package output

import (
	"io"
	"math"

	"varheat/internal/jsonutil"
	"varheat/internal/matrix"
	"varheat/pkg/api"
)

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToAPISelection converts a row statistic at 1-based rank to the stable wire schema (v1).
func ToAPISelection(rank int, st matrix.RowStat) api.SelectionV1 {
	v := api.SelectionV1{
		Label:   st.Label,
		Rank:    rank,
		Mean:    finite(st.Mean),
		Stdev:   finite(st.Stdev),
		Valid:   st.Valid,
		Missing: st.Missing,
	}
	if st.Score.Defined {
		v.CV = finite(st.Score.Value)
	}
	return v
}

func toAPISelections(stats []matrix.RowStat) []api.SelectionV1 {
	out := make([]api.SelectionV1, 0, len(stats))
	for i, st := range stats {
		out = append(out, ToAPISelection(i+1, st))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 selections (pretty-indented).
func WriteJSON(w io.Writer, stats []matrix.RowStat) error {
	return jsonutil.EncodePretty(w, toAPISelections(stats))
}
