// Package server implements the HTTP layer of the dashboard: one full
// page render plus HTMX partials and a small JSON API the charts read.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/pkg/service"
)

//go:generate moq -out mocks/dataset.go -pkg mocks -skip-ensure -fmt goimports . Dataset
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

//go:embed templates
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	data    Dataset
	version string
	debug   bool

	sanitizer     *bluemonday.Policy
	templates     *template.Template
	pageTemplates map[string]*template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Dataset provides read-only, fully materialized views over the loaded
// records; no call mutates anything
type Dataset interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Overview(ctx context.Context) (*service.Overview, error)
	Record(ctx context.Context, idx int) (domain.Record, error)
	LabelDistribution(ctx context.Context) ([]domain.LabelCount, error)
	SentimentDistribution(ctx context.Context) ([]domain.SentimentCount, error)
	CrossTab(ctx context.Context) (domain.CrossTab, error)
	WeeklyStats(ctx context.Context) ([]domain.WeeklyStat, error)
	SmoothedStats(ctx context.Context) ([]domain.WeeklyStat, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, data Dataset, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		data:      data,
		version:   version,
		debug:     debug,
		sanitizer: bluemonday.StrictPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.loadTemplates()
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// loadTemplates parses page templates against the base layout and keeps
// shared partials separately for direct execution
func (s *Server) loadTemplates() {
	funcs := template.FuncMap{
		"sanitize": func(text string) string { return s.sanitizer.Sanitize(text) },
		"truncate": truncateText,
	}

	s.templates = template.Must(template.New("partials").Funcs(funcs).ParseFS(templatesFS,
		"templates/record-inspector.html"))

	s.pageTemplates = map[string]*template.Template{}
	for _, page := range []string{"dashboard.html"} {
		s.pageTemplates[page] = template.Must(template.New(page).Funcs(funcs).ParseFS(templatesFS,
			"templates/base.html", "templates/"+page, "templates/record-inspector.html"))
	}
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newspulse", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// UI routes
	s.router.HandleFunc("GET /{$}", s.dashboardHandler)
	s.router.HandleFunc("GET /inspect", s.inspectHandler)

	// API routes consumed by chart rendering
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /distributions/labels", s.labelDistributionHandler)
		r.HandleFunc("GET /distributions/sentiments", s.sentimentDistributionHandler)
		r.HandleFunc("GET /trends/weekly", s.weeklyTrendsHandler)
		r.HandleFunc("GET /trends/stacked", s.stackedTrendsHandler)
		r.HandleFunc("GET /crosstab", s.crosstabHandler)
		r.HandleFunc("GET /records/{index}", s.recordHandler)
	})
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data interface{}) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// respondWithError logs the error and sends a plain error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	if err != nil {
		log.Printf("[ERROR] %s: %v", msg, err)
	}
	http.Error(w, msg, code)
}

// truncateText shortens text for the preview table
func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
