package writers

import (
	"io"

	"varheat/internal/jsonlutil"
	"varheat/internal/matrix"
	"varheat/internal/output"
	"varheat/pkg/api"
)

func init() {
	RegisterSelection(output.FormatText, output.WriteText)
	RegisterSelection(output.FormatJSON, func(w io.Writer, stats []matrix.RowStat, _ bool) error {
		return output.WriteJSON(w, stats)
	})
	RegisterSelection(output.FormatJSONL, func(w io.Writer, stats []matrix.RowStat, _ bool) error {
		return jsonlutil.Write(w, stats, func(i int, st matrix.RowStat) api.SelectionV1 {
			return output.ToAPISelection(i+1, st)
		}, IsBrokenPipe)
	})
}
