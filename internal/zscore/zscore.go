// Package zscore rescales each row of a selection to zero mean and unit
// spread, independently of every other row.
package zscore

import (
	"gonum.org/v1/gonum/stat"

	"varheat/internal/matrix"
)

// FlatTolerance is the spread below which a row counts as constant and is
// divided by 1 instead, mapping it to all zeros.
const FlatTolerance = 1e-12

// Rows z-scores every row of m over its present cells using the population
// standard deviation. Missing cells stay missing.
func Rows(m *matrix.Labeled) *matrix.Normalized {
	r, c := m.Rows(), m.Cols()
	cells := make([]matrix.Cell, 0, r*c)
	for i := 0; i < r; i++ {
		row := m.Row(i)
		vals := matrix.Valid(row)
		mu, sd := stat.PopMeanStdDev(vals, nil)
		if !(sd > FlatTolerance) {
			sd = 1
		}
		for _, cell := range row {
			if !cell.Valid {
				cells = append(cells, matrix.Missing())
				continue
			}
			cells = append(cells, matrix.Num((cell.Value-mu)/sd))
		}
	}
	out, err := matrix.New(m.RowLabels(), m.ColLabels(), cells)
	if err != nil {
		// labels come from a valid matrix and the shape is preserved
		panic(err)
	}
	return &matrix.Normalized{Labeled: out}
}
