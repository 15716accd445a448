// Package server exposes the engine over HTTP.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/service"
)

// Processor is the part of the engine the transport needs.
type Processor interface {
	Process(ctx context.Context, req model.ProcessRequest) (model.ProcessResponse, error)
	Clarify(req model.ClarifyRequest) (model.ClarifyResponse, error)
	ModelName() string
}

// Options configures a Server. History may be nil. When Certificate is set the
// server speaks HTTPS.
type Options struct {
	Processor      Processor
	History        service.HistoryStore
	Logger         *slog.Logger
	Certificate    *tls.Certificate
	Provider       string
	AllowedOrigins []string
}

// Server routes HTTP requests to the engine.
type Server struct {
	processor Processor
	history   service.HistoryStore
	logger    *slog.Logger
	cert      *tls.Certificate
	provider  string
	origins   []string
}

// New creates a server from opts.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		processor: opts.Processor,
		history:   opts.History,
		logger:    logger,
		cert:      opts.Certificate,
		provider:  opts.Provider,
		origins:   opts.AllowedOrigins,
	}
}

// Handler builds the router with its middleware stack.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(s.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/process", s.handleProcess)
		r.Post("/clarify", s.handleClarify)
		r.Get("/health", s.handleHealth)
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleHistoryEntry)
	})

	return router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cert != nil {
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{*s.cert}, MinVersion: tls.VersionTLS12}
	}

	errCh := make(chan error, 1)
	go func() {
		if s.cert != nil {
			s.logger.Info("HTTPS server listening", "addr", addr)
			errCh <- srv.ListenAndServeTLS("", "")
			return
		}
		s.logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
