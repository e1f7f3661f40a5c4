package ui

import (
	"net/http"

	"heartscope/internal/render"
)

// Fragment handlers re-render only the chart region of a page when a
// selection widget changes. Non-HTMX requests fall back to the full page.

func (a *App) handleDistributionsFragment(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/pages/distributions?"+r.URL.RawQuery, http.StatusSeeOther)
		return
	}
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
	a.renderTemplate(w, "distributions_charts.html", &view)
}

func (a *App) handleRelationshipsFragment(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/pages/relationships?"+r.URL.RawQuery, http.StatusSeeOther)
		return
	}
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
	a.renderTemplate(w, "relationships_charts.html", &view)
}

func (a *App) handleTargetFragment(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/pages/target?"+r.URL.RawQuery, http.StatusSeeOther)
		return
	}
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
	a.renderTemplate(w, "target_charts.html", &view)
}
