package analysis

import (
	"heartscope/domain/table"
)

// ScatterSeries is one colored point group of a scatter plot.
type ScatterSeries struct {
	Label  string       `json:"label"`
	Points [][2]float64 `json:"points"`
}

// ScatterByGroup extracts (x, y) points split into one series per group
// category, in ascending category order. Rows missing any of the three
// cells are skipped. X and Y may be the same column; the result is then the
// degenerate diagonal, passed through as-is.
func ScatterByGroup(x, y, group *table.Column) []ScatterSeries {
	labels := Categories(group)
	idx := make(map[string]int, len(labels))
	series := make([]ScatterSeries, len(labels))
	for i, label := range labels {
		idx[label] = i
		series[i] = ScatterSeries{Label: label}
	}

	n := x.Len()
	for i := 0; i < n; i++ {
		label, ok := group.CategoryAt(i)
		if !ok || !x.Valid[i] || !y.Valid[i] {
			continue
		}
		s := &series[idx[label]]
		s.Points = append(s.Points, [2]float64{x.Values[i], y.Values[i]})
	}
	return series
}
