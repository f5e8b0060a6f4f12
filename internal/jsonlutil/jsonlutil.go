// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across calls to avoid per-report mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Write encodes each item as one JSON line on out, converting with conv.
// Errors matched by isBroken (closed pipes) are swallowed.
func Write[T, W any](out io.Writer, items []T, conv func(int, T) W, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for i, v := range items {
		if err := enc.Encode(conv(i, v)); err != nil {
			if isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
