// Package nlu combines intent classification and entity extraction into one
// text-analysis engine. The engine is pure transformation logic: it performs
// no I/O and holds no mutable state, so a single instance may serve
// arbitrarily many concurrent calls.
package nlu

import (
	"context"
	"log/slog"

	"github.com/espada105/Personal-Assistant-SION/internal/observability"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/entity"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/intent"
)

// Result is the complete output of one text analysis.
type Result struct {
	Text     string          `json:"text"`
	Intent   intent.Match    `json:"intent"`
	Entities []entity.Entity `json:"entities"`
}

// Engine analyzes raw utterances. The classifier is pluggable; when an
// alternative classifier fails, analysis falls back to the built-in rule
// classifier so Analyze never fails.
type Engine struct {
	classifier intent.Classifier
	fallback   *intent.RuleClassifier
	extractor  *entity.Extractor
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier replaces the default rule-based classifier.
func WithClassifier(c intent.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// NewEngine creates an analysis engine with the rule-based classifier as
// default.
func NewEngine(opts ...Option) *Engine {
	rule := intent.NewRuleClassifier()
	engine := &Engine{
		classifier: rule,
		fallback:   rule,
		extractor:  entity.NewExtractor(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Analyze classifies the intent of text and extracts its entities. Both run
// independently over the same input. Analysis always returns a usable result,
// worst case unknown intent with an empty entity list.
func (e *Engine) Analyze(ctx context.Context, text string) Result {
	match, err := e.classifier.Classify(ctx, text)
	if err != nil {
		if reqCtx, ok := observability.FromContext(ctx); ok {
			reqCtx.Warn("classifier failed, falling back to rule classifier",
				slog.String("error", err.Error()))
		} else {
			slog.Warn("classifier failed, falling back to rule classifier", "error", err)
		}
		match, _ = e.fallback.Classify(ctx, text)
	}

	return Result{
		Text:     text,
		Intent:   match,
		Entities: e.extractor.Extract(text),
	}
}
