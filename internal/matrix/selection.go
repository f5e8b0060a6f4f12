package matrix

// Score is a row's variability score. Defined is false when the row has too
// few present values for a spread to exist; such rows rank last.
type Score struct {
	Value   float64
	Defined bool
}

// RowStat carries the per-row figures behind a Score.
type RowStat struct {
	Label   string
	Index   int // position in the loaded matrix
	Score   Score
	Mean    float64
	Stdev   float64
	Valid   int
	Missing int
}

// Selection is the ranked top-K subset of a loaded matrix.
type Selection struct {
	// Stats are ordered by descending score, ties by original row order.
	Stats []RowStat
	// Matrix holds the selected rows in the same order as Stats.
	Matrix *Labeled
}

// Labels returns the selected row labels in rank order.
func (s *Selection) Labels() []string {
	out := make([]string, len(s.Stats))
	for i, st := range s.Stats {
		out[i] = st.Label
	}
	return out
}

// Normalized is a row z-scored matrix. Missing cells stay missing.
type Normalized struct {
	*Labeled
}

// Range returns the smallest and largest present value. ok is false when
// every cell is missing.
func (n *Normalized) Range() (lo, hi float64, ok bool) {
	for _, c := range n.cells {
		if !c.Valid {
			continue
		}
		if !ok {
			lo, hi, ok = c.Value, c.Value, true
			continue
		}
		if c.Value < lo {
			lo = c.Value
		}
		if c.Value > hi {
			hi = c.Value
		}
	}
	return lo, hi, ok
}
