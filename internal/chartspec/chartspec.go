// Package chartspec defines the JSON chart specifications the dashboard
// emits. The server never rasterizes anything: each spec is data plus
// encoding instructions, and the client-side renderer turns it into a
// drawing. Degenerate specs (single-slice pies, diagonal scatters) are
// emitted unfiltered.
package chartspec

import (
	"heartscope/internal/analysis"
)

// ChartType discriminates the spec payloads for the client renderer.
type ChartType string

const (
	TypeHistogram  ChartType = "histogram"
	TypeBox        ChartType = "box"
	TypePie        ChartType = "pie"
	TypeHeatmap    ChartType = "heatmap"
	TypeScatter    ChartType = "scatter"
	TypeGroupedBar ChartType = "grouped_bar"
)

// Histogram is a fixed-bucket frequency chart of one numeric column.
type Histogram struct {
	Type  ChartType      `json:"type"`
	Title string         `json:"title"`
	Field string         `json:"field"`
	Bins  []analysis.Bin `json:"bins"`
}

// NewHistogram builds a histogram spec.
func NewHistogram(title, field string, bins []analysis.Bin) Histogram {
	return Histogram{Type: TypeHistogram, Title: title, Field: field, Bins: bins}
}

// Box is a box plot with one box per group.
type Box struct {
	Type   ChartType           `json:"type"`
	Title  string              `json:"title"`
	Field  string              `json:"field"`
	Groups []analysis.BoxStats `json:"groups"`
}

// NewBox builds a box plot spec.
func NewBox(title, field string, groups []analysis.BoxStats) Box {
	return Box{Type: TypeBox, Title: title, Field: field, Groups: groups}
}

// Pie is a share-of-total chart over category counts. Slices keep the order
// given; zero-size slices stay in place.
type Pie struct {
	Type   ChartType                `json:"type"`
	Title  string                   `json:"title"`
	Slices []analysis.CategoryCount `json:"slices"`
}

// NewPie builds a pie spec.
func NewPie(title string, slices []analysis.CategoryCount) Pie {
	return Pie{Type: TypePie, Title: title, Slices: slices}
}

// Heatmap is an annotated matrix with a diverging color scale centered at
// Center. Cells carrying NaN render empty.
type Heatmap struct {
	Type   ChartType   `json:"type"`
	Title  string      `json:"title"`
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
	Center float64     `json:"center"`
}

// NewCorrelationHeatmap builds a heatmap spec from a correlation matrix,
// diverging around zero.
func NewCorrelationHeatmap(title string, m analysis.CorrelationMatrix) Heatmap {
	return Heatmap{Type: TypeHeatmap, Title: title, Labels: m.Columns, Values: m.Values, Center: 0}
}

// Scatter is a point chart with one series per color group.
type Scatter struct {
	Type   ChartType                `json:"type"`
	Title  string                   `json:"title"`
	XLabel string                   `json:"x_label"`
	YLabel string                   `json:"y_label"`
	Series []analysis.ScatterSeries `json:"series"`
}

// NewScatter builds a scatter spec.
func NewScatter(title, xLabel, yLabel string, series []analysis.ScatterSeries) Scatter {
	return Scatter{Type: TypeScatter, Title: title, XLabel: xLabel, YLabel: yLabel, Series: series}
}

// BarSeries is one bar group of a grouped bar chart.
type BarSeries struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
}

// GroupedBar is a grouped bar chart: one cluster per category, one bar per
// series.
type GroupedBar struct {
	Type       ChartType   `json:"type"`
	Title      string      `json:"title"`
	Categories []string    `json:"categories"`
	Series     []BarSeries `json:"series"`
}

// NewGroupedBarFromCrosstab builds a grouped bar spec with one cluster per
// feature category and one bar per grouping column.
func NewGroupedBarFromCrosstab(title string, ct analysis.Crosstab) GroupedBar {
	series := make([]BarSeries, len(ct.Columns))
	for j, label := range ct.Columns {
		values := make([]int, len(ct.Rows))
		for i := range ct.Rows {
			values[i] = ct.Counts[i][j]
		}
		series[j] = BarSeries{Label: label, Values: values}
	}
	return GroupedBar{Type: TypeGroupedBar, Title: title, Categories: ct.Rows, Series: series}
}
