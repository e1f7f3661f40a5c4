package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heartscope/domain/table"
	"heartscope/internal/analysis"
	"heartscope/internal/errors"
	"heartscope/internal/preprocess"
)

// heartTable builds a small preprocessed table covering both column kinds:
// ages span all four groups, target alternates 0/1.
func heartTable(t *testing.T) *table.Table {
	t.Helper()
	raw, err := table.New("fp", []table.Column{
		table.NewNumericColumn("age", []float64{25, 45, 55, 65, 38}, nil),
		table.NewNumericColumn("sex", []float64{1, 0, 1, 0, 1}, nil),
		table.NewNumericColumn("chol", []float64{190, 240, 280, 300, 210}, nil),
		table.NewNumericColumn("thalach", []float64{190, 165, 150, 130, 180}, nil),
		table.NewNumericColumn("target", []float64{0, 1, 0, 1, 0}, nil),
	})
	require.NoError(t, err)
	processed, err := preprocess.Apply(raw)
	require.NoError(t, err)
	return processed
}

func TestHome_Metrics(t *testing.T) {
	view, err := Home(heartTable(t), 3)
	require.NoError(t, err)

	want := []Metric{
		{Label: "Total Patients", Value: "5"},
		{Label: "Heart Disease Cases", Value: "2"},
		{Label: "Average Age", Value: "45.6"},
		{Label: "Average Cholesterol", Value: "244.0"},
	}
	assert.Equal(t, want, view.Metrics)

	require.Len(t, view.SampleRows, 3)
	assert.Equal(t, view.Columns, heartTable(t).Names())
	// First sample row verbatim, including the derived group label.
	assert.Equal(t, "25", view.SampleRows[0][0])
	assert.Equal(t, "Young", view.SampleRows[0][len(view.Columns)-1])
}

func TestHome_SampleCappedAtRowCount(t *testing.T) {
	view, err := Home(heartTable(t), 50)
	require.NoError(t, err)
	assert.Len(t, view.SampleRows, 5)
}

func TestHome_MissingRequiredColumn(t *testing.T) {
	tbl, err := table.New("fp", []table.Column{
		table.NewNumericColumn("age", []float64{25}, nil),
	})
	require.NoError(t, err)

	_, err = Home(tbl, 5)
	require.Error(t, err)
	assert.Equal(t, "COLUMN_MISSING", errors.GetCode(err))
}

func TestOverview(t *testing.T) {
	view, err := Overview(heartTable(t))
	require.NoError(t, err)

	assert.Equal(t, 5, view.Rows)
	assert.Equal(t, 6, view.Columns)
	assert.Greater(t, view.MemoryKB, 0.0)

	kinds := make(map[string]string)
	for _, r := range view.Reports {
		kinds[r.Name] = r.Kind
		assert.Equal(t, 5, r.NonMissing+r.Missing)
	}
	assert.Equal(t, "numeric", kinds["age"])
	assert.Equal(t, "categorical", kinds["sex"])
	assert.Equal(t, "categorical", kinds["age_group"])

	// Descriptive statistics cover numeric columns only.
	var described []string
	for _, s := range view.Summaries {
		described = append(described, s.Column)
	}
	assert.Equal(t, []string{"age", "chol", "thalach", "target"}, described)
}

func TestDistributions_NumericDefault(t *testing.T) {
	view, err := Distributions(heartTable(t), "")
	require.NoError(t, err)

	assert.Equal(t, "age", view.Feature, "empty selection falls back to the first column")
	assert.True(t, view.Numeric)
	require.NotNil(t, view.Histogram)
	require.NotNil(t, view.Box)
	assert.Nil(t, view.Pie)
	assert.Len(t, view.Histogram.Bins, analysis.HistogramBuckets)
}

func TestDistributions_Categorical(t *testing.T) {
	view, err := Distributions(heartTable(t), "sex")
	require.NoError(t, err)

	assert.False(t, view.Numeric)
	assert.Nil(t, view.Histogram)
	require.NotNil(t, view.Pie)
	assert.Len(t, view.Pie.Slices, 2)
}

func TestDistributions_UnknownColumn(t *testing.T) {
	_, err := Distributions(heartTable(t), "nope")
	require.Error(t, err)
	assert.Equal(t, "COLUMN_MISSING", errors.GetCode(err))
}

func TestRelationships_Defaults(t *testing.T) {
	view, err := Relationships(heartTable(t), "", "")
	require.NoError(t, err)

	assert.Equal(t, "age", view.XAxis)
	assert.Equal(t, "chol", view.YAxis)
	assert.Equal(t, []string{"age", "chol", "thalach", "target"}, view.NumericOptions)
	assert.Equal(t, view.NumericOptions, view.Heatmap.Labels,
		"heatmap spans exactly the numeric columns")
	assert.Len(t, view.Scatter.Series, 2, "one series per target class")
}

func TestRelationships_SameColumnBothAxes(t *testing.T) {
	view, err := Relationships(heartTable(t), "age", "age")
	require.NoError(t, err)
	assert.Equal(t, "age vs age", view.Scatter.Title)
}

func TestRelationships_CategoricalAxisRejected(t *testing.T) {
	_, err := Relationships(heartTable(t), "sex", "chol")
	require.Error(t, err)
	assert.Equal(t, "COLUMN_KIND", errors.GetCode(err))
}

func TestTarget_PieKeepsBothClasses(t *testing.T) {
	view, err := Target(heartTable(t), "")
	require.NoError(t, err)

	require.Len(t, view.Pie.Slices, 2)
	assert.Equal(t, analysis.CategoryCount{Label: "No Disease", Count: 3}, view.Pie.Slices[0])
	assert.Equal(t, analysis.CategoryCount{Label: "Disease", Count: 2}, view.Pie.Slices[1])
	assert.Equal(t, "age", view.Feature, "defaults to the first non-target column")
}

func TestTarget_ZeroCountClassKeepsItsSlice(t *testing.T) {
	raw, err := table.New("fp", []table.Column{
		table.NewNumericColumn("age", []float64{45, 55}, nil),
		table.NewNumericColumn("target", []float64{0, 0}, nil),
	})
	require.NoError(t, err)
	processed, err := preprocess.Apply(raw)
	require.NoError(t, err)

	view, err := Target(processed, "")
	require.NoError(t, err)
	require.Len(t, view.Pie.Slices, 2)
	assert.Equal(t, 0, view.Pie.Slices[1].Count, "absent class stays in place at size zero")
}

func TestTarget_NumericFeatureSplitsByClass(t *testing.T) {
	view, err := Target(heartTable(t), "chol")
	require.NoError(t, err)

	assert.True(t, view.Numeric)
	require.NotNil(t, view.Box)
	assert.Nil(t, view.Bars)
	require.Len(t, view.Box.Groups, 2)
	assert.Equal(t, "No Disease", view.Box.Groups[0].Label)
	assert.Equal(t, 3, view.Box.Groups[0].N)
	assert.Equal(t, 2, view.Box.Groups[1].N)
}

func TestTarget_CategoricalFeature(t *testing.T) {
	view, err := Target(heartTable(t), "sex")
	require.NoError(t, err)

	assert.False(t, view.Numeric)
	assert.Nil(t, view.Box)
	require.NotNil(t, view.Bars)
	assert.Len(t, view.Bars.Series, 2)
}

func TestTarget_RejectsTargetAsFeature(t *testing.T) {
	_, err := Target(heartTable(t), "target")
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", errors.GetCode(err))
}

func TestSummary_FixedStatements(t *testing.T) {
	view := Summary()
	require.Len(t, view.Statements, 5)
	for _, s := range view.Statements {
		assert.True(t, strings.Contains(string(s), "<strong>"),
			"emphasis markdown renders to HTML")
	}
}

func TestParsePage(t *testing.T) {
	page, ok := ParsePage("distributions")
	require.True(t, ok)
	assert.Equal(t, PageDistributions, page)
	assert.Equal(t, "Distributions", page.Title())

	_, ok = ParsePage("nope")
	assert.False(t, ok)
}
