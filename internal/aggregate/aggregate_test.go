package aggregate

import (
	"strings"
	"testing"

	"FactScanner/internal/domain"
)

func analyzed(verdicts ...domain.Verdict) []domain.AnalyzedSegment {
	segments := make([]domain.AnalyzedSegment, 0, len(verdicts))
	for i, v := range verdicts {
		segments = append(segments, domain.AnalyzedSegment{
			Segment:  domain.Segment{ID: i + 1, Text: "claim"},
			Judgment: domain.ClaimJudgment{Verdict: v, Confidence: 0.8},
		})
	}
	return segments
}

func TestScore(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if got := Score(analyzed(domain.VerdictTrue, domain.VerdictTrue), cfg); got != 1.0 {
		t.Errorf("all-true score = %v, want 1.0", got)
	}
	if got := Score(analyzed(domain.VerdictFalse, domain.VerdictFalse), cfg); got != 0.0 {
		t.Errorf("all-false score = %v, want 0.0", got)
	}
	if got := Score(analyzed(domain.VerdictTrue, domain.VerdictFalse), cfg); got != 0.5 {
		t.Errorf("one true one false score = %v, want 0.5", got)
	}
	if got := Score(nil, cfg); got != 0 {
		t.Errorf("empty score = %v, want 0", got)
	}
}

func TestScoreWeights(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	got := Score(analyzed(domain.VerdictMostlyTrue, domain.VerdictMixed, domain.VerdictMostlyFalse), cfg)
	want := (0.8 + 0.5 + 0.2) / 3
	if got != want {
		t.Errorf("weighted score = %v, want %v", got, want)
	}
}

func TestKeyFindings(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	segments := analyzed(domain.VerdictTrue, domain.VerdictTrue, domain.VerdictFalse)
	accuracy := Score(segments, cfg)

	findings := KeyFindings(segments, accuracy, cfg)
	if len(findings) != 5 {
		t.Fatalf("expected 5 findings, got %d: %v", len(findings), findings)
	}

	if !strings.Contains(findings[0], "3 factual claims") {
		t.Errorf("unexpected count finding: %q", findings[0])
	}
	if !strings.Contains(findings[1], "2 claims verified as true") {
		t.Errorf("unexpected true-count finding: %q", findings[1])
	}
	if !strings.Contains(findings[2], "1 claims rated false") {
		t.Errorf("unexpected false-count finding: %q", findings[2])
	}
	if !strings.Contains(findings[3], "80%") {
		t.Errorf("unexpected confidence finding: %q", findings[3])
	}
}

func TestAccuracyBuckets(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if got := accuracyBucket(0.85, cfg); got != "Content is primarily accurate" {
		t.Errorf("bucket(0.85) = %q", got)
	}
	if got := accuracyBucket(0.8, cfg); got != "Content is primarily accurate" {
		t.Errorf("bucket(0.8) = %q", got)
	}
	if got := accuracyBucket(0.7, cfg); got != "Content has mixed accuracy" {
		t.Errorf("bucket(0.7) = %q", got)
	}
	if got := accuracyBucket(0.3, cfg); got != "Content contains questionable claims" {
		t.Errorf("bucket(0.3) = %q", got)
	}
}

func TestKeyFindingsEmpty(t *testing.T) {
	t.Parallel()

	findings := KeyFindings(nil, 0, DefaultConfig())
	if len(findings) != 1 {
		t.Fatalf("expected only the count finding for empty input, got %v", findings)
	}
}
