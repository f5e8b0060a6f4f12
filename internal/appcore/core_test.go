package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"varheat/internal/heatmap"
	"varheat/internal/matrix"
	"varheat/internal/output"
)

const data = "gene\tc1\tc2\tc3\n" +
	"flat\t1\t1\t1\n" +
	"wild\t-3\t1\t5\n" +
	"mild\t9\t10\t11\n"

func options(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	require.NoError(t, os.WriteFile(in, []byte(data), 0o644))
	st := heatmap.DefaultStyle()
	st.FontDirs = nil
	st.DPI = 60
	return Options{DataFile: in, OutFile: filepath.Join(dir, "out.png"), TopN: 2, Style: st, ScoresFormat: output.FormatText, Header: true}
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{context.Canceled, 130},
		{fmt.Errorf("stage: %w", context.DeadlineExceeded), 130},
		{fmt.Errorf("%w: disk full", heatmap.ErrWriteFailure), 3},
		{fmt.Errorf("%w: x.tsv", matrix.ErrDataUnavailable), 2},
		{matrix.ErrEmptyMatrix, 2},
		{fmt.Errorf("%w: dpi 0", heatmap.ErrBadStyle), 2},
		{errors.New("boom"), 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ExitCode(c.err), "%v", c.err)
	}
}

func TestRun_SavedOnStdout(t *testing.T) {
	o := options(t)
	var out, errB bytes.Buffer
	require.Equal(t, 0, Run(context.Background(), &out, &errB, quietLogger(), o), errB.String())
	require.Equal(t, "Saved "+o.OutFile+"\n", out.String())
	_, err := os.Stat(o.OutFile)
	require.NoError(t, err)
}

func TestRun_ScoresKeepStdoutClean(t *testing.T) {
	o := options(t)
	o.Scores = true
	o.Summary = true
	var out, errB bytes.Buffer
	require.Equal(t, 0, Run(context.Background(), &out, &errB, quietLogger(), o))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, output.TSVHeader, lines[0])
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "wild\t1\t"))
	require.True(t, strings.HasPrefix(lines[2], "mild\t2\t"))

	require.Contains(t, errB.String(), "Loaded 3 rows × 3 columns; selected 2")
	require.Contains(t, errB.String(), "Saved "+o.OutFile)
}

func TestRun_FallbacksLoggedAtWarn(t *testing.T) {
	o := options(t)
	var logs bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	require.Equal(t, 0, Run(context.Background(), io.Discard, io.Discard, lg, o))
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "resource=colormap")
	require.Contains(t, logs.String(), "used=PuBuGn")
	require.Contains(t, logs.String(), "resource=typeface")
}

func TestRun_MissingInput(t *testing.T) {
	o := options(t)
	o.DataFile = filepath.Join(t.TempDir(), "absent.tsv")
	var out, errB bytes.Buffer
	require.Equal(t, 2, Run(context.Background(), &out, &errB, quietLogger(), o))
	require.Empty(t, out.String())
	require.Contains(t, errB.String(), "data file unavailable")
	_, err := os.Stat(o.OutFile)
	require.True(t, os.IsNotExist(err))
}

func TestRun_Cancelled(t *testing.T) {
	o := options(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var errB bytes.Buffer
	require.Equal(t, 130, Run(ctx, io.Discard, &errB, quietLogger(), o))
	require.Empty(t, errB.String())
	_, err := os.Stat(o.OutFile)
	require.True(t, os.IsNotExist(err))
}
