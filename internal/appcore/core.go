// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"varheat/internal/cmdutil"
	"varheat/internal/heatmap"
	"varheat/internal/output"
	"varheat/internal/pipeline"
	"varheat/internal/writers"
)

// Options is everything a run needs once flags and env are resolved.
type Options struct {
	DataFile string
	OutFile  string
	TopN     int
	Style    heatmap.Style

	Scores       bool
	ScoresFormat string
	Header       bool
	Summary      bool
}

// Run executes the pipeline and writes the requested reports. When the score
// report goes to stdout, the summary and the "Saved" line go to stderr so the
// report stays machine-readable.
func Run(parent context.Context, stdout, stderr io.Writer, lg *slog.Logger, o Options) int {
	outw := bufio.NewWriter(stdout)
	notes := io.Writer(outw)
	if o.Scores {
		notes = stderr
	}

	lg.Debug("run", "data_file", o.DataFile, "out_file", o.OutFile, "top_n", o.TopN)

	res, err := pipeline.Run(parent,
		pipeline.Config{TopN: o.TopN},
		pipeline.FileLoader{Path: o.DataFile},
		pipeline.PNGRenderer{Style: o.Style, Path: o.OutFile},
	)
	if res != nil {
		lg.Debug("loaded", "rows", res.Loaded.Rows(), "cols", res.Loaded.Cols())
		lg.Debug("selected", "rows", len(res.Selection.Stats), "labels", res.Selection.Labels())
		for _, fb := range res.Report.Fallbacks {
			lg.Warn(fb.String(), "resource", fb.Resource, "requested", fb.Requested, "used", fb.Used)
		}
	}
	if err != nil {
		code := ExitCode(err)
		if code != 130 {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return code
	}
	lg.Info("rendered", "colormap", res.Report.Colormap, "typeface", res.Report.Typeface,
		"width", res.Report.Width, "height", res.Report.Height,
		"vmin", res.Report.Domain.Min, "vmax", res.Report.Domain.Max)

	if o.Summary {
		if err := output.WriteSummary(notes, res.Loaded.Rows(), res.Loaded.Cols(), len(res.Selection.Stats)); err != nil && !writers.IsBrokenPipe(err) {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if o.Scores {
		if err := writers.WriteSelection(o.ScoresFormat, outw, res.Selection.Stats, o.Header); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	_, _ = fmt.Fprintf(notes, "Saved %s\n", o.OutFile)
	return cmdutil.Flush(outw, stderr, 0)
}
