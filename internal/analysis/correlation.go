package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"heartscope/domain/table"
)

// CorrelationMatrix holds pairwise Pearson correlations over the numeric
// columns of a table. Values is row-major with Values[i][j] the correlation
// between Columns[i] and Columns[j].
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Correlate computes the Pearson correlation matrix over all numeric-kind
// columns. Each pair uses its pairwise-complete rows (both cells present).
// The diagonal is exactly 1; a constant column correlates as NaN, which the
// heatmap renders as an empty cell.
func Correlate(t *table.Table) CorrelationMatrix {
	names := t.NumericNames()
	cols := make([]*table.Column, len(names))
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}

	values := make([][]float64, len(names))
	for i := range values {
		values[i] = make([]float64, len(names))
		values[i][i] = 1
	}

	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := pairwisePearson(cols[i], cols[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return CorrelationMatrix{Columns: names, Values: values}
}

// pairwisePearson correlates two columns over rows where both are present.
func pairwisePearson(a, b *table.Column) float64 {
	n := a.Len()
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if a.Valid[i] && b.Valid[i] {
			x = append(x, a.Values[i])
			y = append(y, b.Values[i])
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
