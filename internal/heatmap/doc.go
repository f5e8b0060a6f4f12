// Package heatmap draws a row-normalized matrix as an annotated heatmap and
// writes it as a PNG.
//
// # Style
//
// Everything visual (canvas size, DPI, colormap, typeface, captions) lives in
// Style, which is passed in explicitly; the package keeps no global drawing
// state, so concurrent renders with different styles do not interfere.
//
// # Fallbacks
//
// A colormap or typeface that is not available is replaced by a documented
// default and reported in Report.Fallbacks; rendering never fails because of
// a missing resource. Only writing the destination can fail.
//
// # Color domain
//
// The colorbar spans the data range [vmin, vmax], and colors are centered so
// that 0 always lands on the middle of the scale, whatever the asymmetry of
// the data.
package heatmap
