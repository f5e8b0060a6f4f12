package heatmap

import (
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// colorbarTicks returns the labelled ticks plot.DefaultTicks picks for
// [lo, hi], clipped to the range. lo must be below hi.
func colorbarTicks(lo, hi float64) (vals []float64, labels []string) {
	slack := (hi - lo) * 1e-9
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo-slack || t.Value > hi+slack {
			continue
		}
		vals = append(vals, t.Value)
		labels = append(labels, tidyLabel(t.Label))
	}
	if len(vals) == 0 {
		for _, v := range []float64{lo, hi} {
			vals = append(vals, v)
			labels = append(labels, tidyLabel(strconv.FormatFloat(v, 'g', 3, 64)))
		}
	}
	return vals, labels
}

// tidyLabel drops the sign of a negative zero.
func tidyLabel(s string) string {
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
