package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"heartscope/internal/dataset"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	cache     *dataset.Cache
	templates *template.Template
	log       *zap.Logger

	sampleRows int
}

// Config holds dashboard application configuration
type Config struct {
	Cache      *dataset.Cache
	Logger     *zap.Logger
	SampleRows int
}

// NewApp creates the dashboard application
func NewApp(config Config) (*App, error) {
	if config.Cache == nil {
		return nil, fmt.Errorf("dataset cache is required")
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.SampleRows <= 0 {
		config.SampleRows = 10
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b float64) float64 { return a * b },
		"json": func(v interface{}) (template.JS, error) {
			b, err := json.Marshal(v)
			return template.JS(b), err
		},
		"kb": func(v float64) string { return fmt.Sprintf("%.2f KB", v) },
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles,
		"templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:     chi.NewRouter(),
		cache:      config.Cache,
		templates:  templates,
		log:        config.Logger,
		sampleRows: config.SampleRows,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Full pages
	a.router.Get("/", a.handleIndex)
	a.router.Get("/pages/{page}", a.handlePage)

	// HTMX fragment endpoints for widget-driven chart updates
	a.router.Get("/fragments/distributions", a.handleDistributionsFragment)
	a.router.Get("/fragments/relationships", a.handleRelationshipsFragment)
	a.router.Get("/fragments/target", a.handleTargetFragment)

	// JSON chart endpoints
	a.router.Get("/api/charts/distributions", a.handleDistributionsJSON)
	a.router.Get("/api/charts/relationships", a.handleRelationshipsJSON)
	a.router.Get("/api/charts/target", a.handleTargetJSON)

	a.router.Get("/healthz", a.handleHealthz)
}

// Router exposes the HTTP handler, mainly for tests.
func (a *App) Router() http.Handler { return a.router }

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	a.log.Info("starting heartscope dashboard", zap.String("addr", addr))
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.log.Error("template render failed", zap.String("template", templateName), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// HTMX helpers
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (a *App) renderJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("json encode failed", zap.Error(err))
	}
}
