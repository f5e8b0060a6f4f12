// internal/pipeline/stages.go
package pipeline

import (
	"context"

	"varheat/internal/heatmap"
	"varheat/internal/matrix"
	"varheat/internal/tsv"
)

// Loader produces the cleaned input matrix.
type Loader interface {
	Load(ctx context.Context) (*matrix.Labeled, error)
}

// Renderer turns the normalized selection into the output artifact.
type Renderer interface {
	Render(ctx context.Context, n *matrix.Normalized) (heatmap.Report, error)
}

// FileLoader reads a TSV file ("-" for stdin).
type FileLoader struct {
	Path string
}

func (f FileLoader) Load(context.Context) (*matrix.Labeled, error) {
	return tsv.LoadFile(f.Path)
}

// PNGRenderer draws with Style and writes the PNG to Path.
type PNGRenderer struct {
	Style heatmap.Style
	Path  string
}

func (r PNGRenderer) Render(ctx context.Context, n *matrix.Normalized) (heatmap.Report, error) {
	return heatmap.Render(ctx, n, r.Style, r.Path)
}
