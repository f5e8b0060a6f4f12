package matrix

import "math"

// Cell is one matrix entry. A zero Cell is missing.
type Cell struct {
	Value float64
	Valid bool
}

// Num returns a present cell holding v. NaN and ±Inf are stored as missing.
func Num(v float64) Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Cell{}
	}
	return Cell{Value: v, Valid: true}
}

// Missing returns an absent cell.
func Missing() Cell { return Cell{} }

// Valid collects the present values of cells, in order.
func Valid(cells []Cell) []float64 {
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		if c.Valid {
			out = append(out, c.Value)
		}
	}
	return out
}

// AllMissing reports whether no cell in cells is present.
func AllMissing(cells []Cell) bool {
	for _, c := range cells {
		if c.Valid {
			return false
		}
	}
	return true
}
