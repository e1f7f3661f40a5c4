package render

import (
	"fmt"

	"heartscope/domain/table"
	"heartscope/internal/analysis"
	"heartscope/internal/chartspec"
	"heartscope/internal/errors"
)

// DistributionsView is the Distributions page view model. Exactly one of
// the chart pairs is set, chosen by the selected column's declared kind.
type DistributionsView struct {
	Feature   string
	Options   []string
	Numeric   bool
	Histogram *chartspec.Histogram
	Box       *chartspec.Box
	Pie       *chartspec.Pie
}

// Distributions builds the Distributions page for the selected column. An
// empty selection defaults to the first column. The numeric/categorical
// branch follows the kind tag assigned during preprocessing; no redetection
// happens here.
func Distributions(t *table.Table, feature string) (DistributionsView, error) {
	options := t.Names()
	if feature == "" {
		feature = options[0]
	}
	col, ok := t.Column(feature)
	if !ok {
		return DistributionsView{}, errors.ColumnMissing(feature)
	}

	view := DistributionsView{Feature: feature, Options: options, Numeric: col.IsNumeric()}
	if col.IsNumeric() {
		values := col.CompactValues()
		hist := chartspec.NewHistogram(
			fmt.Sprintf("Distribution of %s", feature), feature,
			analysis.Histogram(values, analysis.HistogramBuckets))
		box, err := analysis.Box(feature, values)
		if err != nil {
			return DistributionsView{}, err
		}
		boxSpec := chartspec.NewBox(fmt.Sprintf("Box Plot of %s", feature), feature,
			[]analysis.BoxStats{box})
		view.Histogram = &hist
		view.Box = &boxSpec
		return view, nil
	}

	pie := chartspec.NewPie(fmt.Sprintf("Distribution of %s", feature), analysis.ValueCounts(col))
	view.Pie = &pie
	return view, nil
}
