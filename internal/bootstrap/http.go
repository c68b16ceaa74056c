package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dormlife/community-api/internal/config"
)

// Server owns the HTTP listener and the backing resources (database, bucket,
// Redis) that must outlive in-flight requests. Resources close after the
// listener drains, in reverse registration order.
type Server struct {
	cfg     *config.Config
	server  *http.Server
	closers []closer
}

type closer struct {
	name  string
	close func() error
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
	}
}

// OnShutdown registers a resource to close once the listener has stopped.
func (s *Server) OnShutdown(name string, fn func() error) {
	s.closers = append(s.closers, closer{name: name, close: fn})
}

// Start blocks until the listener stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	slog.Info("서버 시작 중",
		"port", s.cfg.App.Port,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
	)

	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains the listener, then closes every registered resource even if
// draining timed out. All failures are joined into the returned error.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http: %w", err))
	}

	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.close(); err != nil {
			slog.Error("리소스 종료 실패", "resource", c.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		slog.Info("리소스 종료", "resource", c.name)
	}
	s.closers = nil

	return errors.Join(errs...)
}
