package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"varheat/internal/matrix"
	"varheat/internal/output"
)

func stats() []matrix.RowStat {
	return []matrix.RowStat{
		{Label: "a", Score: matrix.Score{Value: 1.5, Defined: true}, Mean: 2, Stdev: 3, Valid: 3},
		{Label: "b", Score: matrix.Score{Value: 0.5, Defined: true}, Mean: 4, Stdev: 2, Valid: 2, Missing: 1},
	}
}

func TestSelectionFormats(t *testing.T) {
	require.Equal(t, []string{"json", "jsonl", "text"}, SelectionFormats())
}

func TestWriteSelection_Text(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteSelection("text", &b, stats(), true))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, output.TSVHeader, lines[0])
	require.True(t, strings.HasPrefix(lines[2], "b\t2\t"))
}

func TestWriteSelection_JSONIgnoresHeader(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteSelection("json", &b, stats(), false))
	var got []map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0]["label"])
}

func TestWriteSelection_JSONL(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteSelection("jsonl", &b, stats(), true))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "b", second["label"])
	require.Equal(t, 2.0, second["rank"])
	require.Equal(t, 1.0, second["missing"])
}

func TestUnknownSelectionFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteSelection("nope-format", &b, stats(), false)
	if err == nil || !strings.Contains(err.Error(), "unknown selection format") {
		t.Fatalf("want 'unknown selection format' error, got: %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	require.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	require.True(t, IsBrokenPipe(io.ErrClosedPipe))
	require.False(t, IsBrokenPipe(io.EOF))
	require.False(t, IsBrokenPipe(nil))
}
