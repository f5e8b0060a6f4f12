// Package variability ranks matrix rows by a coefficient-of-variation-like
// score and selects the most variable ones.
package variability

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"varheat/internal/matrix"
)

// Epsilon keeps the score finite when a row's mean is exactly zero.
const Epsilon = 1e-6

// CV returns stdev/(|mean|+Epsilon) over the present values, using the
// sample (n-1) standard deviation. Fewer than two values leave it undefined.
// Mean is NaN for no values; stdev is NaN for fewer than two.
func CV(values []float64) (score matrix.Score, mean, stdev float64) {
	switch len(values) {
	case 0:
		return matrix.Score{}, math.NaN(), math.NaN()
	case 1:
		return matrix.Score{}, values[0], math.NaN()
	}
	mean, stdev = stat.MeanStdDev(values, nil)
	return matrix.Score{Value: stdev / (math.Abs(mean) + Epsilon), Defined: true}, mean, stdev
}

// Score computes one RowStat per row of m, in row order.
func Score(m *matrix.Labeled) []matrix.RowStat {
	out := make([]matrix.RowStat, m.Rows())
	for i := range out {
		row := m.Row(i)
		vals := matrix.Valid(row)
		sc, mean, sd := CV(vals)
		out[i] = matrix.RowStat{
			Label:   m.RowLabel(i),
			Index:   i,
			Score:   sc,
			Mean:    mean,
			Stdev:   sd,
			Valid:   len(vals),
			Missing: len(row) - len(vals),
		}
	}
	return out
}

// Less orders a before b: defined scores first, higher scores first.
// Equal keys report false so a stable sort keeps the original row order.
func Less(a, b matrix.Score) bool {
	if a.Defined != b.Defined {
		return a.Defined
	}
	return a.Defined && a.Value > b.Value
}

// Top returns the k highest-scoring rows of m, clamped to m.Rows().
// k must be positive.
func Top(m *matrix.Labeled, k int) *matrix.Selection {
	if k <= 0 {
		panic(fmt.Sprintf("variability: top-n must be positive, got %d", k))
	}
	stats := Score(m)
	sort.SliceStable(stats, func(i, j int) bool { return Less(stats[i].Score, stats[j].Score) })
	if k < len(stats) {
		stats = stats[:k]
	}
	idx := make([]int, len(stats))
	for i, st := range stats {
		idx[i] = st.Index
	}
	return &matrix.Selection{Stats: stats, Matrix: m.SelectRows(idx)}
}
