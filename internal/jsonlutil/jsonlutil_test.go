package jsonlutil

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	N int    `json:"n"`
	S string `json:"s"`
}

func never(error) bool { return false }

func TestWrite(t *testing.T) {
	var b strings.Builder
	err := Write(&b, []string{"a", "b"}, func(i int, s string) row { return row{N: i + 1, S: s} }, never)
	require.NoError(t, err)
	require.Equal(t, "{\"n\":1,\"s\":\"a\"}\n{\"n\":2,\"s\":\"b\"}\n", b.String())
}

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWrite_BrokenPipeSwallowed(t *testing.T) {
	conv := func(_ int, s string) string { return s }
	isPipe := func(err error) bool { return errors.Is(err, io.ErrClosedPipe) }
	require.NoError(t, Write(failing{}, []string{"x"}, conv, isPipe))
	require.ErrorIs(t, Write(failing{}, []string{"x"}, conv, never), io.ErrClosedPipe)
}
