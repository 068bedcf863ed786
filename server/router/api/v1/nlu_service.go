// Package v1 exposes the NLU engine over a JSON HTTP API. The handlers are
// thin adapters: all decision logic lives in the engine packages.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/espada105/Personal-Assistant-SION/internal/observability"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu"
)

// NLUService handles text analysis requests.
type NLUService struct {
	Engine *nlu.Engine
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze classifies the intent of the text and extracts its entities.
func (s *NLUService) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	reqCtx := observability.NewRequestContext(slog.Default(), "nlu")
	ctx := observability.WithRequestContext(c.Request().Context(), reqCtx)
	result := s.Engine.Analyze(ctx, req.Text)
	reqCtx.Info("text analyzed",
		slog.String(observability.LogFieldIntent, string(result.Intent.Intent)),
		slog.Float64(observability.LogFieldConfidence, float64(result.Intent.Confidence)),
		slog.Int(observability.LogFieldTextLen, len(req.Text)),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
	)

	return c.JSON(http.StatusOK, result)
}

// Classify classifies intent only, without entity extraction.
func (s *NLUService) Classify(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	result := s.Engine.Analyze(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, result.Intent)
}
