package ui

import (
	"net/http"

	"heartscope/internal/render"
)

// JSON chart endpoints expose the same chart specifications the templates
// embed, for clients that want raw specs instead of rendered pages.

func (a *App) handleDistributionsJSON(w http.ResponseWriter, r *http.Request) {
	t, err := a.cache.Processed()
	if err != nil {
		a.renderError(w, err)
		return
	}
	view, err := render.Distributions(t, r.URL.Query().Get("feature"))
	if err != nil {
		a.renderError(w, err)
		return
	}
	charts := map[string]interface{}{"feature": view.Feature, "numeric": view.Numeric}
	if view.Numeric {
		charts["histogram"] = view.Histogram
		charts["box"] = view.Box
	} else {
		charts["pie"] = view.Pie
	}
	a.renderJSON(w, charts)
}

func (a *App) handleRelationshipsJSON(w http.ResponseWriter, r *http.Request) {
	t, err := a.cache.Processed()
	if err != nil {
		a.renderError(w, err)
		return
	}
	view, err := render.Relationships(t, r.URL.Query().Get("x"), r.URL.Query().Get("y"))
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderJSON(w, map[string]interface{}{
		"heatmap": view.Heatmap,
		"scatter": view.Scatter,
	})
}

func (a *App) handleTargetJSON(w http.ResponseWriter, r *http.Request) {
	t, err := a.cache.Processed()
	if err != nil {
		a.renderError(w, err)
		return
	}
	view, err := render.Target(t, r.URL.Query().Get("feature"))
	if err != nil {
		a.renderError(w, err)
		return
	}
	charts := map[string]interface{}{"feature": view.Feature, "numeric": view.Numeric, "pie": view.Pie}
	if view.Numeric {
		charts["box"] = view.Box
	} else {
		charts["bars"] = view.Bars
	}
	a.renderJSON(w, charts)
}

// handleHealthz reports the cached dataset revision and its shape.
func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	t, err := a.cache.Processed()
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderJSON(w, map[string]interface{}{
		"status":      "ok",
		"fingerprint": t.Source.Short(),
		"rows":        t.RowCount(),
		"columns":     t.ColumnCount(),
	})
}
