package analysis

import (
	"heartscope/domain/table"
)

// Crosstab is a contingency table: joint occurrence counts of a feature's
// categories against a second column's categories.
type Crosstab struct {
	Rows    []string `json:"rows"`    // feature categories, ascending
	Columns []string `json:"columns"` // grouping categories, ascending
	Counts  [][]int  `json:"counts"`  // Counts[i][j] = rows with feature=Rows[i], group=Columns[j]
}

// CrossTabulate counts joint occurrences of feature and group categories
// over rows where both cells are present.
func CrossTabulate(feature, group *table.Column) Crosstab {
	rows := Categories(feature)
	cols := Categories(group)

	rowIdx := make(map[string]int, len(rows))
	for i, r := range rows {
		rowIdx[r] = i
	}
	colIdx := make(map[string]int, len(cols))
	for i, c := range cols {
		colIdx[c] = i
	}

	counts := make([][]int, len(rows))
	for i := range counts {
		counts[i] = make([]int, len(cols))
	}

	n := feature.Len()
	for i := 0; i < n; i++ {
		fLabel, fOK := feature.CategoryAt(i)
		gLabel, gOK := group.CategoryAt(i)
		if fOK && gOK {
			counts[rowIdx[fLabel]][colIdx[gLabel]]++
		}
	}
	return Crosstab{Rows: rows, Columns: cols, Counts: counts}
}
