package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/3-lines-studio/accordion"
	"github.com/3-lines-studio/accordion/internal/page"
)

// Widget is the part of an accordion the server drives.
type Widget interface {
	OuterHTML() (string, error)
	ToggleSnapshot(index int) (accordion.Snapshot, error)
	Snapshot() accordion.Snapshot
}

type Config struct {
	Addr  string
	Port  int
	Title string
	IsDev bool
	// AssetDir overrides where dev mode reads assets from. When empty the
	// module root is searched for upwards from the working directory.
	AssetDir string
}

// Server serves one accordion page and forwards browser clicks to the
// shared widget.
type Server struct {
	widget Widget
	config Config
	logger *slog.Logger
	mux    *http.ServeMux
	http   *http.Server
}

func NewServer(widget Widget, config Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		widget: widget,
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.Handle("GET /{$}", NewPageHandler(s.widget, s.config.Title))
	s.mux.Handle("GET "+assetPrefix+"{name}", NewAssetHandler(s.devAssetDir()))
	s.mux.Handle("POST /toggle", NewToggleHandler(s.widget, s.logger))
	s.mux.HandleFunc("GET /state", s.handleState)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

func (s *Server) devAssetDir() string {
	if !s.config.IsDev {
		return ""
	}
	dir := s.config.AssetDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = FindDevAssetDir(wd)
		}
	}
	if dir == "" {
		s.logger.Warn("asset sources not found, serving embedded assets", "path", devAssetPath)
		return ""
	}
	s.logger.Debug("serving assets from disk", "dir", dir)
	return dir
}

// Handler returns the mux wrapped in recovery and request logging.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	h = s.loggingMiddleware(h)
	h = s.recoveryMiddleware(h)
	return h
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Addr, s.config.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.http = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("accordion server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Shutdown is a no-op if the server was never started.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(s.widget.Snapshot()), s.logger)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.code = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			s.logger.Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = page.ErrorTemplate.Execute(w, page.ErrorData{
				Message: fmt.Sprint(rec),
				IsDev:   s.config.IsDev,
			})
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.code,
			"duration", time.Since(start),
		)
	})
}
