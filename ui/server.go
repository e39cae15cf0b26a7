package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goeda/adapters/tabular"
	"goeda/internal"
	"goeda/internal/config"
	analyzer "goeda/internal/eda"
	"goeda/internal/report"
)

//go:embed templates/*
var embeddedFiles embed.FS

// Server is the web front end: one page, an upload endpoint, and one
// endpoint per analysis view. It owns the single mutable piece of state in
// the system, the currently loaded dataset, which is replaced wholesale on
// each upload.
type Server struct {
	router    *chi.Mux
	loader    *tabular.Loader
	analyzer  *analyzer.Analyzer
	reports   *report.Builder
	templates *template.Template
	config    *config.Config
	logger    *internal.Logger

	state datasetHolder
}

// NewServer creates the web server with its routes configured
func NewServer(cfg *config.Config) (*Server, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := analyzer.NewAnalyzer()
	s := &Server{
		router:    chi.NewRouter(),
		loader:    tabular.NewLoader(),
		analyzer:  a,
		reports:   report.NewBuilder(a),
		templates: templates,
		config:    cfg,
		logger:    internal.NewDefaultLogger(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)

	s.router.Post("/api/datasets/upload", s.handleUpload)
	s.router.Get("/api/datasets/current", s.handleCurrentDataset)

	// One endpoint per dashboard tab
	s.router.Get("/api/eda/overview", s.handleOverview)
	s.router.Get("/api/eda/correlation", s.handleCorrelation)
	s.router.Get("/api/eda/outliers", s.handleOutliers)
	s.router.Get("/api/eda/missing", s.handleMissing)
	s.router.Get("/api/eda/duplicates", s.handleDuplicates)

	// Aggregate views
	s.router.Get("/api/eda/full", s.handleFullAnalysis)
	s.router.Get("/report", s.handleReport)
}

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// PreloadFile loads a dataset from disk at startup so the dashboard is
// populated without an upload.
func (s *Server) PreloadFile(path string) error {
	t, err := s.loader.LoadFile(path)
	if err != nil {
		return err
	}
	ds := s.state.replace(path, t)
	s.logger.Info("Preloaded dataset %s from %s (%d rows, %d columns)",
		ds.ID, path, t.RowCount(), t.ColumnCount())
	return nil
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting EDA server on %s", addr)
	return s.httpServer(addr).ListenAndServe()
}

// httpServer builds the listener. The endpoint accepts uploads, so slow
// clients must not be able to hold connections open indefinitely.
func (s *Server) httpServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       1 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}
