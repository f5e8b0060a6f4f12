// Package matrix holds the labeled numeric table that flows through the
// pipeline: the loaded matrix, the ranked selection and the row-normalized
// result.
//
// Missing cells are carried as Cell{Valid: false} and never as a sentinel
// number, so arithmetic over a row must go through Valid().
//
// Values in this package are immutable once built; every stage returns a new
// value instead of editing the one it was given.
package matrix
