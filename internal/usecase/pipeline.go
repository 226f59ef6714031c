package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"FactScanner/internal/aggregate"
	"FactScanner/internal/domain"
	"FactScanner/internal/metrics"
	"FactScanner/internal/ports"
	"FactScanner/internal/segmenter"
)

// Step names, fixed for the lifetime of a run and never reordered.
const (
	stepAcquire = "acquire_transcript"
	stepSegment = "segment_transcript"
	stepVerify  = "verify_claims"
	stepReport  = "compile_report"
)

const retrySuggestion = "Try again in a few minutes or with a different video link"

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.ContentSource
	Segmenter *segmenter.Segmenter
	Verifier  ports.SegmentVerifier
	Scoring   aggregate.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// Pipeline sequences acquisition, segmentation, verification, and
// aggregation into named steps, emitting a progress snapshot after every
// status transition. No raw error ever crosses this boundary: a terminal
// stage failure is converted into a degraded but fully formed Report.
type Pipeline struct {
	source    ports.ContentSource
	segmenter *segmenter.Segmenter
	verifier  ports.SegmentVerifier
	scoring   aggregate.Config
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	scoring := deps.Scoring
	if scoring.Weights == nil {
		scoring = aggregate.DefaultConfig()
	}
	seg := deps.Segmenter
	if seg == nil {
		seg = segmenter.New(0)
	}
	return &Pipeline{
		source:    deps.Source,
		segmenter: seg,
		verifier:  deps.Verifier,
		scoring:   scoring,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}
}

// run owns the mutable step list for a single invocation; concurrent runs
// never share state. Observers only ever receive copies.
type run struct {
	steps    []domain.PipelineStep
	progress ports.ProgressFunc
}

func newRun(progress ports.ProgressFunc) *run {
	return &run{
		progress: progress,
		steps: []domain.PipelineStep{
			{Name: stepAcquire, Status: domain.StepPending},
			{Name: stepSegment, Status: domain.StepPending},
			{Name: stepVerify, Status: domain.StepPending},
			{Name: stepReport, Status: domain.StepPending},
		},
	}
}

func (r *run) emit() {
	if r.progress != nil {
		r.progress(r.snapshot())
	}
}

func (r *run) snapshot() []domain.PipelineStep {
	return append([]domain.PipelineStep(nil), r.steps...)
}

func (r *run) transition(index int, status domain.StepStatus, message string) {
	r.steps[index].Status = status
	r.steps[index].Message = message
	if status == domain.StepCompleted {
		r.steps[index].Progress = 100
	}
	r.emit()
}

func (r *run) setProgress(index int, done, total int) {
	if total <= 0 {
		return
	}
	r.steps[index].Progress = done * 100 / total
	r.steps[index].Message = fmt.Sprintf("Verified %d of %d claims", done, total)
	r.emit()
}

// Analyze executes one full run and always returns a structurally valid
// Report, either completed or degraded.
func (p *Pipeline) Analyze(ctx context.Context, reference string, progress ports.ProgressFunc) domain.Report {
	started := time.Now()
	p.metrics.IncRuns()
	p.metrics.RunStarted()
	defer p.metrics.RunFinished()

	r := newRun(progress)
	r.emit()

	r.transition(0, domain.StepProcessing, "Acquiring transcript")
	if p.source == nil {
		return p.degraded(r, 0, reference, "no content source configured", started)
	}
	content, err := p.source.Acquire(ctx, reference)
	if err != nil {
		return p.degraded(r, 0, reference, fmt.Sprintf("transcript acquisition failed: %v", err), started)
	}
	if strings.TrimSpace(content.RawText) == "" {
		return p.degraded(r, 0, reference, "transcript acquisition produced no content", started)
	}
	r.transition(0, domain.StepCompleted, fmt.Sprintf("Transcript acquired (%s)", content.Strategy))

	r.transition(1, domain.StepProcessing, "Segmenting transcript into checkable claims")
	segments := p.segmenter.Split(content.RawText, segmenter.ParseDurationLabel(content.Duration))
	if len(segments) == 0 {
		return p.degraded(r, 1, reference, "segmentation produced no segments", started)
	}
	r.transition(1, domain.StepCompleted, fmt.Sprintf("%d checkable segments identified", len(segments)))

	r.transition(2, domain.StepProcessing, "Verifying claims")
	var analyzed []domain.AnalyzedSegment
	if p.verifier != nil {
		analyzed = p.verifier.VerifyAll(ctx, segments, func(done, total int) {
			r.setProgress(2, done, total)
		})
	}
	r.transition(2, domain.StepCompleted, fmt.Sprintf("%d claims verified", len(analyzed)))

	r.transition(3, domain.StepProcessing, "Compiling report")
	accuracy := aggregate.Score(analyzed, p.scoring)
	findings := aggregate.KeyFindings(analyzed, accuracy, p.scoring)
	r.transition(3, domain.StepCompleted, "Report ready")

	p.info("analysis complete",
		"reference", reference,
		"strategy", content.Strategy,
		"segments", len(segments),
		"accuracy", accuracy,
	)

	return domain.Report{
		Platform:        platformFor(reference),
		Title:           content.Title,
		Duration:        content.Duration,
		FullTranscript:  content.RawText,
		Segments:        analyzed,
		OverallAccuracy: accuracy,
		KeyFindings:     findings,
		ProcessingTime:  formatElapsed(time.Since(started)),
		Steps:           r.snapshot(),
		Status:          domain.RunCompleted,
	}
}

// degraded marks the currently processing step as failed and builds a
// minimal but fully formed Report carrying the diagnostic findings.
func (p *Pipeline) degraded(r *run, index int, reference, message string, started time.Time) domain.Report {
	r.transition(index, domain.StepError, message)
	p.metrics.IncRunsDegraded()

	if p.logger != nil {
		p.logger.Error("analysis degraded", "reference", reference, "step", r.steps[index].Name, "error", message)
	}

	return domain.Report{
		Platform:        platformFor(reference),
		Title:           "Analysis unavailable",
		FullTranscript:  "",
		Segments:        []domain.AnalyzedSegment{},
		OverallAccuracy: 0,
		KeyFindings: []string{
			"Analysis failed: " + message,
			retrySuggestion,
		},
		ProcessingTime: formatElapsed(time.Since(started)),
		Steps:          r.snapshot(),
		Status:         domain.RunDegraded,
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func platformFor(reference string) string {
	lowered := strings.ToLower(reference)
	if strings.Contains(lowered, "youtu.be") || strings.Contains(lowered, "youtube.com") {
		return "youtube"
	}
	return "video"
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
