// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"varheat/internal/heatmap"
	"varheat/internal/matrix"
	"varheat/internal/variability"
	"varheat/internal/zscore"
)

// Config controls row selection.
type Config struct {
	TopN int // rows to keep (>=1); clamped to the rows available
}

// Result carries every intermediate value of a run.
type Result struct {
	Loaded     *matrix.Labeled
	Selection  *matrix.Selection
	Normalized *matrix.Normalized
	Report     heatmap.Report
}

// Prepare runs load, rank and normalize. The context is checked before each
// stage; a cancelled run never starts the next one.
func Prepare(ctx context.Context, cfg Config, ld Loader) (*Result, error) {
	if cfg.TopN < 1 {
		return nil, fmt.Errorf("pipeline: top-n must be >= 1, got %d", cfg.TopN)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := ld.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel := variability.Top(m, cfg.TopN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{Loaded: m, Selection: sel, Normalized: zscore.Rows(sel.Matrix)}, nil
}

// Run is Prepare followed by rendering. On error the partial Result is
// returned alongside it when the data stages completed.
func Run(ctx context.Context, cfg Config, ld Loader, rd Renderer) (*Result, error) {
	res, err := Prepare(ctx, cfg, ld)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	rep, err := rd.Render(ctx, res.Normalized)
	res.Report = rep
	if err != nil {
		return res, err
	}
	return res, nil
}
