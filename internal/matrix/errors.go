package matrix

import "errors"

// Every message is prefixed with "matrix:"; callers match with errors.Is and
// may wrap with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrDataUnavailable is returned when the input cannot be opened or read.
	ErrDataUnavailable = errors.New("matrix: data file unavailable")

	// ErrEmptyMatrix is returned when no row or no column survives cleanup.
	ErrEmptyMatrix = errors.New("matrix: no numeric data found to plot")

	// ErrDimensionMismatch indicates a cell slice that does not match the labels.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDuplicateLabel indicates two rows or two columns share a label.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")
)
