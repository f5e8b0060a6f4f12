package heatmap

import "errors"

var (
	// ErrWriteFailure wraps any error creating or writing the output image.
	ErrWriteFailure = errors.New("heatmap: cannot write image")

	// ErrBadStyle reports a Style whose geometry cannot produce a canvas.
	ErrBadStyle = errors.New("heatmap: invalid style")
)
