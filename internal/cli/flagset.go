package cli

import (
	"flag"
	"fmt"
	"io"

	"varheat/internal/clibase"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and the varheat
// usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [DATA_FILE [OUT_FILE]]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput / output:")
		_, _ = fmt.Fprintf(out, "  -d, --data-file string      Tab-delimited matrix (.gz ok, '-' for STDIN) [%s]\n", def("data-file"))
		_, _ = fmt.Fprintf(out, "  -o, --out-file string       PNG to write [%s]\n", def("out-file"))
		_, _ = fmt.Fprintf(out, "  -n, --top-n int             Rows to plot, most variable first [%s]\n", def("top-n"))

		_, _ = fmt.Fprintln(out, "\nReport:")
		_, _ = fmt.Fprintf(out, "      --scores                Print the selected rows' statistics to stdout [%s]\n", def("scores"))
		_, _ = fmt.Fprintf(out, "      --scores-format string  text | json | jsonl [%s]\n", def("scores-format"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress the TSV header line [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "      --summary               Print a one-line load/selection summary [%s]\n", def("summary"))

		_, _ = fmt.Fprintln(out, "\nEnvironment:")
		_, _ = fmt.Fprintln(out, "  VARHEAT_DATA_FILE, VARHEAT_OUT_FILE, VARHEAT_TOP_N  defaults for the flags above")
		_, _ = fmt.Fprintln(out, "  VARHEAT_COLORMAP, VARHEAT_FALLBACK_COLORMAP         color scale [PuGn, then PuBuGn]")
		_, _ = fmt.Fprintln(out, "  VARHEAT_FIG_WIDTH, VARHEAT_FIG_HEIGHT, VARHEAT_DPI  canvas size [5in x 5in @ 300]")
		_, _ = fmt.Fprintln(out, "  VARHEAT_FONT, VARHEAT_FONT_SIZE, VARHEAT_FONT_PATH  typeface lookup")
		_, _ = fmt.Fprintln(out, "  VARHEAT_TITLE, VARHEAT_XLABEL, VARHEAT_YLABEL, VARHEAT_CAPTION")
	})
	return fs
}

// PrintExamples prints a short quickstart for varheat.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "varheat", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Plot the 10 most variable genes of the Gasch 2000 stress data:")
		_, _ = fmt.Fprintln(w, "  varheat gasch2000.txt heatmap.png")
		_, _ = fmt.Fprintln(w, "\nTop 25 rows from a gzipped matrix, with a JSON score report:")
		_, _ = fmt.Fprintln(w, "  varheat -n 25 --scores --scores-format json expr.tsv.gz top25.png")
		_, _ = fmt.Fprintln(w, "\nRead STDIN and use a diverging scale:")
		_, _ = fmt.Fprintln(w, "  zcat expr.tsv.gz | VARHEAT_COLORMAP=RdBu_r varheat -d - -o out.png")
	})
}
