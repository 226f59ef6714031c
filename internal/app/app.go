package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"FactScanner/internal/aggregate"
	"FactScanner/internal/config"
	"FactScanner/internal/domain"
	"FactScanner/internal/extract"
	"FactScanner/internal/infrastructure/llm"
	"FactScanner/internal/infrastructure/telegram"
	"FactScanner/internal/infrastructure/transcript"
	"FactScanner/internal/logging"
	"FactScanner/internal/metrics"
	"FactScanner/internal/ports"
	"FactScanner/internal/segmenter"
	"FactScanner/internal/usecase"
	"FactScanner/internal/verifier"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	notifier ports.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	met := metrics.New()
	httpClient := &http.Client{Timeout: cfg.Transcript.Timeout() + 5*time.Second}

	var chatClient ports.ChatClient
	if cfg.Oracle.APIKey != "" {
		chatClient = llm.NewOpenAIClient(cfg.Oracle)
	}

	registry := extract.NewRegistry()
	registry.Register(transcript.NewDirectStrategy(httpClient))
	registry.Register(transcript.NewNormalizedStrategy(httpClient))
	registry.Register(transcript.NewAltFormsStrategy(httpClient))
	registry.Register(transcript.NewBoundedStrategy(httpClient))

	source := transcript.NewCascade(transcript.CascadeDeps{
		Registry: registry,
		Order:    cfg.Transcript.Strategies,
		Chat:     chatClient,
		Client:   httpClient,
		Timeout:  cfg.Transcript.Timeout(),
		Logger:   baseLogger.With("component", "transcript.cascade"),
		Metrics:  met,
	})

	claimVerifier := verifier.New(verifier.Deps{
		Chat:        chatClient,
		Pace:        cfg.Oracle.Pace(),
		CallTimeout: cfg.Oracle.Timeout(),
		Temperature: cfg.Oracle.Temperature,
		MaxTokens:   cfg.Oracle.MaxTokens,
		EvidenceCap: cfg.Analysis.EvidenceCap,
		SourceCap:   cfg.Analysis.SourceCap,
		Logger:      baseLogger.With("component", "verifier"),
		Metrics:     met,
	})

	scoring := aggregate.DefaultConfig()
	if cfg.Analysis.AccurateThreshold > 0 {
		scoring.AccurateThreshold = cfg.Analysis.AccurateThreshold
	}
	if cfg.Analysis.MixedThreshold > 0 {
		scoring.MixedThreshold = cfg.Analysis.MixedThreshold
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Segmenter: segmenter.New(cfg.Analysis.MinSegmentChars),
		Verifier:  claimVerifier,
		Scoring:   scoring,
		Logger:    baseLogger.With("component", "pipeline"),
		Metrics:   met,
	})

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	return &Application{
		cfg:      cfg,
		pipeline: pipeline,
		notifier: notifier,
		metrics:  met,
		logger:   baseLogger,
	}
}

// Pipeline exposes the orchestrator for host surfaces.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Metrics exposes the metrics registry for host surfaces.
func (a *Application) Metrics() *metrics.Metrics {
	return a.metrics
}

// Run performs a single analysis and writes the report as JSON to stdout.
func (a *Application) Run(ctx context.Context, reference string) error {
	if a.pipeline == nil {
		return nil
	}

	report := a.pipeline.Analyze(ctx, reference, func(steps []domain.PipelineStep) {
		for _, step := range steps {
			if step.Status == domain.StepProcessing || step.Status == domain.StepError {
				a.logger.Debug("step update", "step", step.Name, "status", string(step.Status), "message", step.Message)
			}
		}
	})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if a.notifier != nil {
		if err := a.notifier.PublishReport(ctx, report); err != nil {
			a.logger.Warn("publish report failed", "error", err)
		}
	}

	return nil
}
