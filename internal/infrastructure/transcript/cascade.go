package transcript

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"FactScanner/internal/domain"
	"FactScanner/internal/extract"
	"FactScanner/internal/metrics"
	"FactScanner/internal/ports"
)

const (
	// StrategyGenerated marks content synthesized by the oracle.
	StrategyGenerated = "generated"
	// StrategyBuiltin marks the fixed built-in passage.
	StrategyBuiltin = "builtin-sample"

	defaultTitle   = "Video Analysis"
	generatedTitle = "Generated Educational Content"
	builtinTitle   = "Sample Educational Content"
)

// CascadeDeps wires the cascade's collaborators.
type CascadeDeps struct {
	Registry *extract.Registry
	Order    []string
	Chat     ports.ChatClient
	Client   *http.Client
	Timeout  time.Duration
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// Cascade implements ports.ContentSource by attempting registered
// strategies strictly in order, then a generative fallback, then a fixed
// built-in passage. It never fails the pipeline outright: the worst case is
// degraded realism, not an error.
type Cascade struct {
	registry *extract.Registry
	order    []string
	chat     ports.ChatClient
	client   *http.Client
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

var _ ports.ContentSource = (*Cascade)(nil)

// NewCascade builds the acquisition cascade from its dependencies.
func NewCascade(deps CascadeDeps) *Cascade {
	client := deps.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Cascade{
		registry: deps.Registry,
		order:    deps.Order,
		chat:     deps.Chat,
		client:   client,
		timeout:  timeout,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}
}

// Acquire walks the ordered strategies; a strategy succeeds only when it
// yields non-empty content. A failed strategy is never retried with the
// same parameters.
func (c *Cascade) Acquire(ctx context.Context, reference string) (domain.AcquiredContent, error) {
	for _, name := range c.order {
		strategy, err := c.registry.Resolve(name)
		if err != nil {
			c.debug("skip unknown strategy", "strategy", name, "error", err)
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		content, err := strategy.Attempt(attemptCtx, reference)
		cancel()

		if err != nil || strings.TrimSpace(content.RawText) == "" {
			c.metrics.IncStrategyFailures()
			c.debug("strategy failed", "strategy", name, "error", err)
			continue
		}

		c.debug("strategy succeeded", "strategy", name, "chars", len(content.RawText))
		return c.withMetadata(ctx, reference, content), nil
	}

	c.metrics.IncTranscriptFallbacks()
	return c.fallbackContent(ctx), nil
}

// withMetadata enriches acquired text with watch-page title and duration.
// Scrape failures only cost metadata, never the transcript itself.
func (c *Cascade) withMetadata(ctx context.Context, reference string, content domain.AcquiredContent) domain.AcquiredContent {
	metaCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	meta, err := fetchMetadata(metaCtx, c.client, reference)
	if err != nil {
		c.debug("metadata scrape failed", "error", err)
	}

	content.Title = meta.Title
	if content.Title == "" {
		content.Title = defaultTitle
	}
	content.Duration = meta.Duration
	return content
}

func (c *Cascade) fallbackContent(ctx context.Context) domain.AcquiredContent {
	if c.chat != nil {
		text, err := c.generateTranscript(ctx)
		if err == nil && strings.TrimSpace(text) != "" {
			c.debug("generative fallback produced content", "chars", len(text))
			return domain.AcquiredContent{
				RawText:  strings.TrimSpace(text),
				Title:    generatedTitle,
				Strategy: StrategyGenerated,
			}
		}
		c.debug("generative fallback failed", "error", err)
	}

	return domain.AcquiredContent{
		RawText:  samplePassage,
		Title:    builtinTitle,
		Strategy: StrategyBuiltin,
	}
}

func (c *Cascade) generateTranscript(ctx context.Context) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.chat.Complete(callCtx, ports.ChatRequest{
		Messages: []ports.ChatMessage{
			{Role: "user", Content: generativePrompt},
		},
		Temperature: 0.7,
		MaxTokens:   400,
	})
}

func (c *Cascade) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
