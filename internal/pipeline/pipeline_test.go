package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"varheat/internal/heatmap"
	"varheat/internal/matrix"
	"varheat/internal/tsv"
)

// Compile-time checks: the concrete stages satisfy the contracts.
var (
	_ Loader   = FileLoader{}
	_ Renderer = PNGRenderer{}
)

type textLoader string

func (s textLoader) Load(context.Context) (*matrix.Labeled, error) {
	return tsv.Load(strings.NewReader(string(s)))
}

type recordingRenderer struct {
	got   *matrix.Normalized
	calls int
	err   error
}

func (r *recordingRenderer) Render(_ context.Context, n *matrix.Normalized) (heatmap.Report, error) {
	r.calls++
	r.got = n
	return heatmap.Report{Colormap: "fake"}, r.err
}

const data = "gene\tt1\tt2\tt3\tt4\n" +
	"flat\t5\t5\t5\t5\n" +
	"wild\t1\t10\t-3\t2\n" +
	"gap\t1\tNA\t3\t\n" +
	"empty\t-\t\tNA\tx\n" +
	"big\t1000\t1010\t990\t1000\n"

func TestRun_EndToEndWithFakeRenderer(t *testing.T) {
	rd := &recordingRenderer{}
	res, err := Run(context.Background(), Config{TopN: 10}, textLoader(data), rd)
	require.NoError(t, err)
	require.Equal(t, 1, rd.calls)
	require.Equal(t, "fake", res.Report.Colormap)

	// "empty" dropped on load; top 10 clamps to the 4 survivors
	require.Equal(t, 4, res.Loaded.Rows())
	require.Equal(t, []string{"wild", "gap", "big", "flat"}, res.Selection.Labels())
	require.Same(t, res.Normalized, rd.got)

	// flat row normalizes to zeros, gap row keeps its holes
	flat := res.Normalized.Row(3)
	for _, c := range flat {
		require.Equal(t, matrix.Cell{Value: 0, Valid: true}, c)
	}
	require.False(t, res.Normalized.At(1, 1).Valid)
	require.False(t, res.Normalized.At(1, 3).Valid)
}

func TestPrepare_TopNSmallerThanRows(t *testing.T) {
	res, err := Prepare(context.Background(), Config{TopN: 2}, textLoader(data))
	require.NoError(t, err)
	require.Equal(t, []string{"wild", "gap"}, res.Selection.Labels())
	require.Equal(t, 2, res.Normalized.Rows())
	require.Equal(t, 4, res.Normalized.Cols())
}

func TestPrepare_Idempotent(t *testing.T) {
	a, err := Prepare(context.Background(), Config{TopN: 3}, textLoader(data))
	require.NoError(t, err)
	b, err := Prepare(context.Background(), Config{TopN: 3}, textLoader(data))
	require.NoError(t, err)
	for i := 0; i < a.Normalized.Rows(); i++ {
		require.Equal(t, a.Normalized.Row(i), b.Normalized.Row(i))
	}
}

func TestRun_LoadErrorStopsBeforeRender(t *testing.T) {
	rd := &recordingRenderer{}
	_, err := Run(context.Background(), Config{TopN: 1}, FileLoader{Path: filepath.Join(t.TempDir(), "none.txt")}, rd)
	require.ErrorIs(t, err, matrix.ErrDataUnavailable)
	require.Zero(t, rd.calls)

	_, err = Run(context.Background(), Config{TopN: 1}, textLoader("id\ta\nr\tNA\n"), rd)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
	require.Zero(t, rd.calls)
}

func TestRun_CancelledNeverRenders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rd := &recordingRenderer{}
	_, err := Run(ctx, Config{TopN: 1}, textLoader(data), rd)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, rd.calls)
}

func TestRun_RenderErrorKeepsResult(t *testing.T) {
	boom := errors.New("boom")
	res, err := Run(context.Background(), Config{TopN: 1}, textLoader(data), &recordingRenderer{err: boom})
	require.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	require.Equal(t, []string{"wild"}, res.Selection.Labels())
}

func TestPrepare_RejectsNonPositiveTopN(t *testing.T) {
	_, err := Prepare(context.Background(), Config{TopN: 0}, textLoader(data))
	require.Error(t, err)
}

func TestPNGRenderer_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	st := heatmap.DefaultStyle()
	st.FontDirs = nil
	st.Width, st.Height, st.DPI = 3, 3, 100
	_, err := Run(context.Background(), Config{TopN: 3}, textLoader(data), PNGRenderer{Style: st, Path: out})
	require.NoError(t, err)
	fi, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, fi.Size(), int64(0))
}
