// Package server hosts the HTTP adapter for the analysis engine.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/espada105/Personal-Assistant-SION/internal/profile"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/intent"
	"github.com/espada105/Personal-Assistant-SION/server/middleware"
	apiv1 "github.com/espada105/Personal-Assistant-SION/server/router/api/v1"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the echo instance with lifecycle management.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
}

// NewServer assembles the HTTP server and its routes.
func NewServer(p *profile.Profile) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimit(middleware.NewRateLimiter(100*time.Millisecond, 30)))

	engine := buildEngine(p)
	apiv1.NewAPIV1Service(p, engine).Register(e)

	return &Server{
		Profile:    p,
		echoServer: e,
	}
}

// buildEngine wires the analysis engine. The LLM classifier is substituted
// only when the profile enables it; the rule classifier remains as fallback
// either way.
func buildEngine(p *profile.Profile) *nlu.Engine {
	if !p.LLMEnabled {
		return nlu.NewEngine()
	}
	cfg := intent.DefaultLLMConfig()
	cfg.APIKey = p.LLMAPIKey
	if p.LLMBaseURL != "" {
		cfg.BaseURL = p.LLMBaseURL
	}
	if p.LLMModel != "" {
		cfg.Model = p.LLMModel
	}
	return nlu.NewEngine(nlu.WithClassifier(intent.NewLLMClassifier(cfg)))
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server starting", "addr", addr, "mode", s.Profile.Mode, "version", s.Profile.Version)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.echoServer.Start(addr); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "failed to start echo server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echoServer.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shut down echo server")
		}
		slog.Info("server stopped")
		return nil
	})
	return g.Wait()
}
