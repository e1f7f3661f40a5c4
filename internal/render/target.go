package render

import (
	"fmt"

	"heartscope/domain/table"
	"heartscope/internal/analysis"
	"heartscope/internal/chartspec"
	"heartscope/internal/errors"
	"heartscope/internal/preprocess"
)

// Target class display labels, in index order 0, 1.
var targetLabels = [2]string{"No Disease", "Disease"}

// TargetView is the Target Analysis page view model: the class-split pie
// plus one feature chart picked by the selected column's kind.
type TargetView struct {
	Pie     chartspec.Pie
	Feature string
	Options []string
	Numeric bool
	Box     *chartspec.Box
	Bars    *chartspec.GroupedBar
}

// Target builds the Target Analysis page. The pie always has exactly two
// slices labeled "No Disease" and "Disease" in index order, even when one
// class never occurs. An empty feature selection defaults to the first
// non-target column.
func Target(t *table.Table, feature string) (TargetView, error) {
	target, ok := t.Column(preprocess.TargetColumn)
	if !ok {
		return TargetView{}, errors.ColumnMissing(preprocess.TargetColumn)
	}

	options := make([]string, 0, t.ColumnCount()-1)
	for _, name := range t.Names() {
		if name != preprocess.TargetColumn {
			options = append(options, name)
		}
	}
	if len(options) == 0 {
		return TargetView{}, errors.InvalidInput("dataset has no feature columns")
	}
	if feature == "" {
		feature = options[0]
	}
	col, ok := t.Column(feature)
	if !ok {
		return TargetView{}, errors.ColumnMissing(feature)
	}
	if feature == preprocess.TargetColumn {
		return TargetView{}, errors.InvalidInput("feature must differ from the target column")
	}

	view := TargetView{
		Pie:     chartspec.NewPie("Heart Disease Distribution", targetSplit(target)),
		Feature: feature,
		Options: options,
		Numeric: col.IsNumeric(),
	}

	if col.IsNumeric() {
		groups, err := boxesByTarget(col, target)
		if err != nil {
			return TargetView{}, err
		}
		box := chartspec.NewBox(fmt.Sprintf("%s by Target", feature), feature, groups)
		view.Box = &box
		return view, nil
	}

	bars := chartspec.NewGroupedBarFromCrosstab(
		fmt.Sprintf("%s vs Target", feature),
		analysis.CrossTabulate(col, target))
	view.Bars = &bars
	return view, nil
}

// targetSplit counts the two target classes in fixed index order. A class
// with no occurrences keeps its slice at size zero.
func targetSplit(target *table.Column) []analysis.CategoryCount {
	counts := [2]int{}
	for i, v := range target.Values {
		if !target.Valid[i] {
			continue
		}
		if v == 1 {
			counts[1]++
		} else {
			counts[0]++
		}
	}
	return []analysis.CategoryCount{
		{Label: targetLabels[0], Count: counts[0]},
		{Label: targetLabels[1], Count: counts[1]},
	}
}

// boxesByTarget computes one five-number summary per target class.
func boxesByTarget(col, target *table.Column) ([]analysis.BoxStats, error) {
	split := [2][]float64{}
	for i, v := range col.Values {
		if !col.Valid[i] || !target.Valid[i] {
			continue
		}
		idx := 0
		if target.Values[i] == 1 {
			idx = 1
		}
		split[idx] = append(split[idx], v)
	}

	groups := make([]analysis.BoxStats, 2)
	for i := range groups {
		box, err := analysis.Box(targetLabels[i], split[i])
		if err != nil {
			return nil, err
		}
		groups[i] = box
	}
	return groups, nil
}
