package appcore

import (
	"context"
	"errors"

	"varheat/internal/heatmap"
	"varheat/internal/matrix"
)

// ExitCode maps a run error to the process exit status:
// 0 ok, 2 unusable input or style, 3 output failure, 130 cancelled.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return 130
	case errors.Is(err, heatmap.ErrWriteFailure):
		return 3
	case errors.Is(err, matrix.ErrDataUnavailable),
		errors.Is(err, matrix.ErrEmptyMatrix),
		errors.Is(err, matrix.ErrDuplicateLabel),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, heatmap.ErrBadStyle):
		return 2
	}
	return 1
}
