package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"launchdash/domain/launch"
	"launchdash/internal"
	apperrors "launchdash/internal/errors"
	"launchdash/ports"
)

//go:embed templates/*.html static/* content/*.md
var embeddedFiles embed.FS

// DashboardTitle is the page heading
const DashboardTitle = "SpaceX Launch Records Dashboard"

// App serves the dashboard page and mounts the JSON API
type App struct {
	router    *chi.Mux
	queries   ports.LaunchQueryPort
	templates *template.Template
	about     template.HTML
	logger    *internal.Logger
}

// indexData is the view model of templates/index.html
type indexData struct {
	Title    string
	About    template.HTML
	Selected string
	Options  []launch.SiteOption
	Slider   launch.SliderConfig
	Info     ports.DatasetInfo
}

// NewApp creates the UI application. api is served under /api/.
func NewApp(queries ports.LaunchQueryPort, api http.Handler, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	funcMap := template.FuncMap{
		"kg": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	aboutSource, err := embeddedFiles.ReadFile("content/about.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read about text: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		queries:   queries,
		templates: templates,
		about:     template.HTML(markdown.ToHTML(aboutSource, nil, nil)),
		logger:    logger.With("UI"),
	}

	if err := app.setupMiddleware(); err != nil {
		return nil, err
	}
	app.setupRoutes(api)

	return app, nil
}

// setupMiddleware configures HTTP middleware and static assets
func (a *App) setupMiddleware() error {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	return nil
}

// setupRoutes configures the application routes
func (a *App) setupRoutes(api http.Handler) {
	a.router.Get("/", a.handleIndex)
	if api != nil {
		a.router.Handle("/api/*", api)
	}
}

// Handler exposes the application as an http.Handler
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("site")
	if selected == "" {
		selected = launch.AllSites
	}
	if !a.knownSite(selected) {
		a.respondError(w, apperrors.NotFound(fmt.Sprintf("launch site %q", selected)))
		return
	}

	a.renderTemplate(w, "index.html", indexData{
		Title:    DashboardTitle,
		About:    a.about,
		Selected: selected,
		Options:  a.queries.GetSiteOptions(),
		Slider:   a.queries.GetSliderConfig(),
		Info:     a.queries.GetDatasetInfo(),
	})
}

func (a *App) knownSite(site string) bool {
	for _, s := range a.queries.GetSites() {
		if s == site {
			return true
		}
	}
	return false
}

// renderTemplate renders into a buffer first so a failed template never
// leaves a half-written page
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		renderErr := apperrors.InternalError("failed to render " + templateName)
		renderErr.Cause = err
		a.respondError(w, renderErr)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Warn("Error writing template response: %v", err)
	}
}

// respondError writes err as plain text with the status of its error code
func (a *App) respondError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(apperrors.GetCode(err))
	if status >= http.StatusInternalServerError {
		a.logger.Error("Page request failed: %v", err)
	}
	http.Error(w, err.Error(), status)
}
