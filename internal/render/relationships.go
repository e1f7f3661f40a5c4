package render

import (
	"fmt"

	"heartscope/domain/table"
	"heartscope/internal/analysis"
	"heartscope/internal/chartspec"
	"heartscope/internal/errors"
	"heartscope/internal/preprocess"
)

// RelationshipsView is the Relationships page view model: the numeric
// correlation heatmap plus a target-colored scatter over a chosen axis pair.
type RelationshipsView struct {
	Heatmap        chartspec.Heatmap
	NumericOptions []string
	XAxis          string
	YAxis          string
	Scatter        chartspec.Scatter
}

// Relationships builds the Relationships page. Empty axis selections
// default to the first two numeric columns. Picking the same column for
// both axes is permitted and yields the degenerate diagonal scatter.
func Relationships(t *table.Table, xAxis, yAxis string) (RelationshipsView, error) {
	numeric := t.NumericNames()
	if len(numeric) == 0 {
		return RelationshipsView{}, errors.InvalidInput("dataset has no numeric columns")
	}
	if xAxis == "" {
		xAxis = numeric[0]
	}
	if yAxis == "" {
		yAxis = numeric[0]
		if len(numeric) > 1 {
			yAxis = numeric[1]
		}
	}

	x, err := numericColumn(t, xAxis)
	if err != nil {
		return RelationshipsView{}, err
	}
	y, err := numericColumn(t, yAxis)
	if err != nil {
		return RelationshipsView{}, err
	}
	target, ok := t.Column(preprocess.TargetColumn)
	if !ok {
		return RelationshipsView{}, errors.ColumnMissing(preprocess.TargetColumn)
	}

	return RelationshipsView{
		Heatmap:        chartspec.NewCorrelationHeatmap("Correlation Matrix", analysis.Correlate(t)),
		NumericOptions: numeric,
		XAxis:          xAxis,
		YAxis:          yAxis,
		Scatter: chartspec.NewScatter(
			fmt.Sprintf("%s vs %s", xAxis, yAxis), xAxis, yAxis,
			analysis.ScatterByGroup(x, y, target)),
	}, nil
}

func numericColumn(t *table.Table, name string) (*table.Column, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, errors.ColumnMissing(name)
	}
	if !col.IsNumeric() {
		return nil, errors.ColumnKind(name, "numeric")
	}
	return col, nil
}
