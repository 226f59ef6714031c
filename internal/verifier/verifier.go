package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"FactScanner/internal/domain"
	"FactScanner/internal/infrastructure/llm"
	"FactScanner/internal/metrics"
	"FactScanner/internal/ports"
)

const (
	defaultEvidenceCap = 4
	defaultSourceCap   = 3
	defaultCallTimeout = 15 * time.Second
	defaultPace        = 1200 * time.Millisecond
	defaultTemperature = 0.2
	defaultMaxTokens   = 600

	defaultExplanation = "No explanation provided."
)

// Deps wires the verifier's collaborators.
type Deps struct {
	Chat        ports.ChatClient
	Pace        time.Duration
	CallTimeout time.Duration
	Temperature float64
	MaxTokens   int
	EvidenceCap int
	SourceCap   int
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
}

// Verifier judges one segment at a time against the reasoning oracle,
// sanitizes whatever comes back, and substitutes a local heuristic judgment
// on any failure. A segment never produces an unhandled error.
type Verifier struct {
	chat        ports.ChatClient
	pacer       *Pacer
	callTimeout time.Duration
	temperature float64
	maxTokens   int
	evidenceCap int
	sourceCap   int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

var _ ports.SegmentVerifier = (*Verifier)(nil)

// New constructs a verifier; zero-valued tuning fields select defaults.
func New(deps Deps) *Verifier {
	pace := deps.Pace
	if pace <= 0 {
		pace = defaultPace
	}
	callTimeout := deps.CallTimeout
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	evidenceCap := deps.EvidenceCap
	if evidenceCap <= 0 {
		evidenceCap = defaultEvidenceCap
	}
	sourceCap := deps.SourceCap
	if sourceCap <= 0 {
		sourceCap = defaultSourceCap
	}
	temperature := deps.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	maxTokens := deps.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Verifier{
		chat:        deps.Chat,
		pacer:       NewPacer(pace),
		callTimeout: callTimeout,
		temperature: temperature,
		maxTokens:   maxTokens,
		evidenceCap: evidenceCap,
		sourceCap:   sourceCap,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}
}

// VerifyAll judges segments strictly sequentially, pacing between oracle
// calls to respect the external rate limit. onProgress may be nil.
func (v *Verifier) VerifyAll(ctx context.Context, segments []domain.Segment, onProgress func(done, total int)) []domain.AnalyzedSegment {
	analyzed := make([]domain.AnalyzedSegment, 0, len(segments))

	for i, segment := range segments {
		if err := v.pacer.Wait(ctx); err != nil {
			v.debug("pacer interrupted, remaining segments use heuristics", "error", err)
		}

		analyzed = append(analyzed, domain.AnalyzedSegment{
			Segment:  segment,
			Judgment: v.VerifySegment(ctx, segment),
		})
		v.pacer.Mark()

		if onProgress != nil {
			onProgress(i+1, len(segments))
		}
	}

	return analyzed
}

// oracleJudgment is the structured payload the oracle is asked to return.
type oracleJudgment struct {
	Verdict     string         `json:"verdict"`
	Confidence  float64        `json:"confidence"`
	Explanation string         `json:"explanation"`
	Evidence    []string       `json:"evidence"`
	Sources     []oracleSource `json:"sources"`
}

type oracleSource struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Reliability float64 `json:"reliability"`
}

// VerifySegment returns a sanitized oracle judgment, or a heuristic one
// when the oracle call fails, times out, or returns an unusable payload.
func (v *Verifier) VerifySegment(ctx context.Context, segment domain.Segment) domain.ClaimJudgment {
	if ctx.Err() != nil || v.chat == nil {
		return v.heuristicJudgment(segment.Text)
	}

	v.metrics.IncOracleCalls()

	callCtx, cancel := context.WithTimeout(ctx, v.callTimeout)
	defer cancel()

	content, err := v.chat.Complete(callCtx, v.buildRequest(segment))
	if err != nil {
		v.metrics.IncOracleFailures()
		v.debug("oracle call failed", "segment", segment.ID, "error", err)
		return v.heuristicJudgment(segment.Text)
	}

	var parsed oracleJudgment
	if err := json.Unmarshal([]byte(llm.ExtractJSON(content)), &parsed); err != nil {
		v.metrics.IncOracleFailures()
		v.debug("oracle response unparseable", "segment", segment.ID, "error", err)
		return v.heuristicJudgment(segment.Text)
	}

	return v.sanitize(parsed)
}

func (v *Verifier) buildRequest(segment domain.Segment) ports.ChatRequest {
	prompt := fmt.Sprintf(`Fact-check this statement: %q

Respond with JSON only, using exactly this shape:
{
  "verdict": "one of: true, mostly_true, mixed, mostly_false, false",
  "confidence": 0.0,
  "explanation": "one or two sentences",
  "evidence": ["up to four short evidence points"],
  "sources": [{"title": "", "url": "", "reliability": 0.0}]
}`, segment.Text)

	return ports.ChatRequest{
		Messages:    []ports.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: v.temperature,
		MaxTokens:   v.maxTokens,
	}
}

// sanitize enforces the judgment invariants: clamped confidence and
// reliability, canonical verdict labels, capped lists, documented defaults
// for missing fields.
func (v *Verifier) sanitize(raw oracleJudgment) domain.ClaimJudgment {
	judgment := domain.ClaimJudgment{
		Verdict:     domain.ParseVerdict(raw.Verdict),
		Confidence:  domain.Clamp01(raw.Confidence),
		Explanation: strings.TrimSpace(raw.Explanation),
		Evidence:    []string{},
		Sources:     []domain.Source{},
	}

	if judgment.Explanation == "" {
		judgment.Explanation = defaultExplanation
	}

	for _, item := range raw.Evidence {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		judgment.Evidence = append(judgment.Evidence, item)
		if len(judgment.Evidence) == v.evidenceCap {
			break
		}
	}

	for _, src := range raw.Sources {
		if strings.TrimSpace(src.Title) == "" && strings.TrimSpace(src.URL) == "" {
			continue
		}
		judgment.Sources = append(judgment.Sources, domain.Source{
			Title:       strings.TrimSpace(src.Title),
			URL:         strings.TrimSpace(src.URL),
			Reliability: domain.Clamp01(src.Reliability),
		})
		if len(judgment.Sources) == v.sourceCap {
			break
		}
	}

	return judgment
}

// heuristicJudgment matches the sentence against known ground-truth
// patterns; with no match it returns a low-confidence mixed judgment.
func (v *Verifier) heuristicJudgment(text string) domain.ClaimJudgment {
	v.metrics.IncHeuristicJudgments()

	lowered := strings.ToLower(text)
	for _, rule := range heuristicRules {
		if rule.expr.MatchString(lowered) {
			return domain.ClaimJudgment{
				Verdict:     rule.verdict,
				Confidence:  rule.confidence,
				Explanation: rule.explanation,
				Evidence:    []string{},
				Sources:     []domain.Source{},
			}
		}
	}

	return domain.ClaimJudgment{
		Verdict:     domain.VerdictMixed,
		Confidence:  0.3,
		Explanation: fallbackExplanation,
		Evidence:    []string{},
		Sources:     []domain.Source{},
	}
}

func (v *Verifier) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}
