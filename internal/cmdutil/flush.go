package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"varheat/internal/writers"
)

// Flush flushes outw and turns the outcome into an exit code: a broken pipe
// keeps code, any other error is reported on stderr and yields 3.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
