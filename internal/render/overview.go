package render

import (
	"heartscope/domain/table"
	"heartscope/internal/analysis"
)

// ColumnReport is one row of the per-column type and missingness table.
type ColumnReport struct {
	Name       string
	Kind       string
	NonMissing int
	Missing    int
}

// OverviewView is the Data Overview page view model.
type OverviewView struct {
	Rows      int
	Columns   int
	MemoryKB  float64
	Reports   []ColumnReport
	Summaries []analysis.Summary
}

// Overview builds the Data Overview page: shape, approximate footprint,
// per-column declared kind with missingness, and descriptive statistics
// over numeric columns only.
func Overview(t *table.Table) (OverviewView, error) {
	view := OverviewView{
		Rows:     t.RowCount(),
		Columns:  t.ColumnCount(),
		MemoryKB: float64(t.MemoryBytes()) / 1024,
	}

	for _, col := range t.Columns() {
		view.Reports = append(view.Reports, ColumnReport{
			Name:       col.Name,
			Kind:       string(col.Kind),
			NonMissing: col.NonMissing(),
			Missing:    col.Missing(),
		})
	}

	summaries, err := analysis.DescribeNumeric(t)
	if err != nil {
		return OverviewView{}, err
	}
	view.Summaries = summaries
	return view, nil
}
