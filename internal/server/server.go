// Package server hosts the portfolio page. It serves pre-rendered markup and
// static assets only; the page never calls back into it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
)

// Server is the gin engine plus the pre-rendered index.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	engine  *gin.Engine
	index   []byte
}

// New renders the index once and registers routes.
func New(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	gin.SetMode(cfg.GinMode)

	index, err := RenderIndex(cfg.TemplateDir, cat, logger)
	if err != nil {
		return nil, err
	}
	hasher, err := newIPHasher()
	if err != nil {
		return nil, fmt.Errorf("init ip hasher: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger, hasher))
	r.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))

	s := &Server{cfg: cfg, logger: logger, catalog: cat, engine: r, index: index}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine
	r.Static("/static", s.cfg.StaticDir)
	r.Static("/images", s.cfg.ImageDir)
	r.Static("/wasm", s.cfg.WasmDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", s.index)
	})

	// Catalog data for embedding contexts
	r.GET("/projects.json", func(c *gin.Context) {
		category := catalog.Category(c.DefaultQuery("category", string(catalog.All)))
		if !s.catalog.Known(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", category)})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": s.catalog.Categories(),
			"projects":   s.catalog.Filter(category),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"title": "Page Not Found",
			"path":  c.Request.URL.Path,
		})
	})
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Index is the pre-rendered page.
func (s *Server) Index() []byte { return s.index }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("portfolio listening", "addr", srv.Addr, "mode", s.cfg.GinMode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("portfolio stopped")
	return nil
}
