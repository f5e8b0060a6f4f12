// Package pipeline runs the four stages of a heatmap build in order:
// load, rank, normalize, render.
//
// The only contracts to implement are Loader and Renderer. This keeps the
// pipeline swappable and testable; ranking and normalization are pure
// functions of the loaded matrix.
package pipeline
