package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"heartscope/domain/core"
	"heartscope/internal/errors"
	"heartscope/internal/render"
)

// pageData is the envelope every full-page template receives.
type pageData struct {
	Title       string
	Active      render.Page
	Nav         []render.NavEntry
	Fingerprint string

	Home          *render.HomeView
	Overview      *render.OverviewView
	Distributions *render.DistributionsView
	Relationships *render.RelationshipsView
	Target        *render.TargetView
	Summary       *render.SummaryView
}

// handleIndex serves the Home page at the root path.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.servePage(w, r, render.PageHome)
}

// handlePage dispatches /pages/{page} to exactly one page builder per
// request. The sidebar only links the six pages, so an unknown segment is a
// plain 404, not a routing fallback.
func (a *App) handlePage(w http.ResponseWriter, r *http.Request) {
	page, ok := render.ParsePage(chi.URLParam(r, "page"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	a.servePage(w, r, page)
}

func (a *App) servePage(w http.ResponseWriter, r *http.Request, page render.Page) {
	rid := core.NewRenderID()
	a.log.Debug("page render started",
		zap.String("render_id", rid.String()),
		zap.String("page", string(page)))

	t, err := a.cache.Processed()
	if err != nil {
		a.renderError(w, err)
		return
	}

	data := pageData{Title: page.Title(), Active: page, Nav: render.Nav, Fingerprint: t.Source.Short()}

	switch page {
	case render.PageHome:
		view, err := render.Home(t, a.sampleRows)
		if err != nil {
			a.renderError(w, err)
			return
		}
		data.Home = &view
	case render.PageOverview:
		view, err := render.Overview(t)
		if err != nil {
			a.renderError(w, err)
			return
		}
		data.Overview = &view
	case render.PageDistributions:
		view, err := render.Distributions(t, r.URL.Query().Get("feature"))
		if err != nil {
			a.renderError(w, err)
			return
		}
		data.Distributions = &view
	case render.PageRelationships:
		view, err := render.Relationships(t, r.URL.Query().Get("x"), r.URL.Query().Get("y"))
		if err != nil {
			a.renderError(w, err)
			return
		}
		data.Relationships = &view
	case render.PageTarget:
		view, err := render.Target(t, r.URL.Query().Get("feature"))
		if err != nil {
			a.renderError(w, err)
			return
		}
		data.Target = &view
	case render.PageSummary:
		view := render.Summary()
		data.Summary = &view
	}

	a.renderTemplate(w, string(page)+".html", data)
}

// renderError surfaces a render failure through the default error
// presentation. Bad selections are client errors; everything else aborts
// the render with a 500.
func (a *App) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.GetCode(err) == errors.CodeInvalidInput {
		status = http.StatusBadRequest
	}
	a.log.Error("render failed", zap.String("code", errors.GetCode(err)), zap.Error(err))
	http.Error(w, err.Error(), status)
}
