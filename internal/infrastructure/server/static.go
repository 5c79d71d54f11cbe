// Package server hosts the generated modules and the planner front-end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
)

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 5 * time.Second

// contentTypes are set explicitly so module scripts load regardless of the
// host's mime database.
var contentTypes = map[string]string{
	".js":   "application/javascript; charset=utf-8",
	".mjs":  "application/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".json": "application/json",
}

// Static serves files from a root directory.
type Static struct {
	root   string
	addr   string
	logger *zap.Logger
}

// NewStatic creates a static host from server settings.
func NewStatic(cfg config.ServerConfig, logger *zap.Logger) *Static {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Static{
		root:   cfg.Root,
		addr:   net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		logger: logger,
	}
}

// Addr returns the listen address.
func (s *Static) Addr() string {
	return s.addr
}

// Handler returns the file-serving handler.
func (s *Static) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct, ok := contentTypes[filepath.Ext(r.URL.Path)]; ok {
			w.Header().Set("Content-Type", ct)
		}
		s.logger.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		files.ServeHTTP(w, r)
	})
}

// Serve listens on ln until ctx is canceled, then shuts down gracefully.
func (s *Static) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	s.logger.Info("serving", zap.String("root", s.root), zap.String("addr", ln.Addr().String()))

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("serving %s: %w", s.root, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	}
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Static) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}
