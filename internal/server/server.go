package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/web"
)

type Config struct {
	Port           int
	AllowedOrigins []string
}

// Server exposes the report pipeline over HTTP and serves the browser page.
type Server struct {
	cfg      Config
	pipeline interfaces.ReportPipeline
	engine   *gin.Engine
	handler  http.Handler
}

func New(cfg Config, pipeline interfaces.ReportPipeline) *Server {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	engine := gin.New()
	// Logging wraps Recovery so recovered panics still get an access-log line.
	engine.Use(RequestID(), Logging("/health"), Recovery(), Tracing())

	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		engine:   engine,
	}
	s.routes()

	s.handler = cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(engine)

	return s
}

func (s *Server) routes() {
	s.engine.POST("/generate-report", s.handleGenerateReport)
	s.engine.POST("/report", s.handleGenerateReport)
	s.engine.GET("/health", s.handleHealth)

	s.engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
	})
	s.engine.StaticFS("/assets", http.FS(web.Assets()))
}

// Handler returns the full HTTP handler, CORS included
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Server running", "addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
