package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"heartscope/internal/dataset"
)

const testCSV = `age,sex,cp,chol,thalach,target
25,1,0,190,190,0
45,0,2,240,165,1
55,1,1,280,150,0
65,0,0,300,130,1
38,1,3,210,180,0
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heart.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	app, err := NewApp(Config{
		Cache:      dataset.NewCache(path, zap.NewNop()),
		SampleRows: 3,
	})
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *App, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestApp_HomePage(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Total Patients")
	assert.Contains(t, body, "Heart Disease Cases")
	assert.Contains(t, body, "45.6", "average age shows rounded to one decimal")
}

func TestApp_AllPagesRespond(t *testing.T) {
	app := newTestApp(t)

	for _, page := range []string{"home", "overview", "distributions", "relationships", "target", "summary"} {
		rec := get(t, app, "/pages/"+page, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "page %s", page)
	}
}

func TestApp_UnknownPage(t *testing.T) {
	app := newTestApp(t)
	rec := get(t, app, "/pages/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApp_TargetChartsJSON(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/charts/target", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload struct {
		Feature string `json:"feature"`
		Numeric bool   `json:"numeric"`
		Pie     struct {
			Slices []struct {
				Label string `json:"label"`
				Count int    `json:"count"`
			} `json:"slices"`
		} `json:"pie"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "age", payload.Feature)
	assert.True(t, payload.Numeric)
	require.Len(t, payload.Pie.Slices, 2)
	assert.Equal(t, "No Disease", payload.Pie.Slices[0].Label)
	assert.Equal(t, 3, payload.Pie.Slices[0].Count)
	assert.Equal(t, "Disease", payload.Pie.Slices[1].Label)
}

func TestApp_TargetChartsJSON_BadFeature(t *testing.T) {
	app := newTestApp(t)
	rec := get(t, app, "/api/charts/target?feature=target", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApp_DistributionsFragment(t *testing.T) {
	app := newTestApp(t)

	// HTMX requests get only the chart region back.
	rec := get(t, app, "/fragments/distributions?feature=sex",
		map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "data-chart")
	assert.NotContains(t, body, "<html", "fragment carries no page shell")

	// Plain navigation falls back to the full page.
	rec = get(t, app, "/fragments/distributions?feature=sex", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pages/distributions?feature=sex", rec.Header().Get("Location"))
}

func TestApp_Healthz(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Status      string `json:"status"`
		Fingerprint string `json:"fingerprint"`
		Rows        int    `json:"rows"`
		Columns     int    `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload.Status)
	assert.Len(t, payload.Fingerprint, 12)
	assert.Equal(t, 5, payload.Rows)
	assert.Equal(t, 7, payload.Columns, "derived age_group joins the file's columns")
}

func TestApp_RequiresCache(t *testing.T) {
	_, err := NewApp(Config{})
	assert.Error(t, err)
}
