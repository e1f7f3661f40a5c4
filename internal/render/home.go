package render

import (
	"strconv"

	"heartscope/domain/table"
	"heartscope/internal/analysis"
	"heartscope/internal/errors"
	"heartscope/internal/preprocess"
)

// Metric is one headline number on the Home page.
type Metric struct {
	Label string
	Value string
}

// HomeView is the Home page view model: four scalar metrics plus the first
// rows of the table verbatim.
type HomeView struct {
	Metrics    []Metric
	Columns    []string
	SampleRows [][]string
}

// Home builds the Home page. The metrics are deterministic functions of the
// input table: row count, sum of the binary target, and the two means
// rounded to one decimal.
func Home(t *table.Table, sampleRows int) (HomeView, error) {
	target, ok := t.Column(preprocess.TargetColumn)
	if !ok {
		return HomeView{}, errors.ColumnMissing(preprocess.TargetColumn)
	}
	age, ok := t.Column("age")
	if !ok {
		return HomeView{}, errors.ColumnMissing("age")
	}
	chol, ok := t.Column("chol")
	if !ok {
		return HomeView{}, errors.ColumnMissing("chol")
	}

	avgAge, err := analysis.Mean(age)
	if err != nil {
		return HomeView{}, err
	}
	avgChol, err := analysis.Mean(chol)
	if err != nil {
		return HomeView{}, err
	}

	view := HomeView{
		Metrics: []Metric{
			{Label: "Total Patients", Value: strconv.Itoa(t.RowCount())},
			{Label: "Heart Disease Cases", Value: strconv.Itoa(int(analysis.Sum(target)))},
			{Label: "Average Age", Value: formatFloat(analysis.Round1(avgAge))},
			{Label: "Average Cholesterol", Value: formatFloat(analysis.Round1(avgChol))},
		},
		Columns: t.Names(),
	}

	n := sampleRows
	if n > t.RowCount() {
		n = t.RowCount()
	}
	view.SampleRows = make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, t.ColumnCount())
		for j, col := range t.Columns() {
			row[j] = cellString(&col, i)
		}
		view.SampleRows[i] = row
	}
	return view, nil
}

// cellString formats one cell for display; missing cells show empty.
func cellString(col *table.Column, i int) string {
	if !col.Valid[i] {
		return ""
	}
	if col.Labels != nil {
		return col.Labels[i]
	}
	return strconv.FormatFloat(col.Values[i], 'g', -1, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
