package aggregate

import (
	"fmt"

	"FactScanner/internal/domain"
)

// Config holds the product-level scoring choices: verdict point values and
// the qualitative accuracy bucket thresholds.
type Config struct {
	Weights           map[domain.Verdict]float64
	AccurateThreshold float64
	MixedThreshold    float64
}

// DefaultConfig returns the standard scale: true=1.0, mostly_true=0.8,
// mixed=0.5, mostly_false=0.2, false=0.0, buckets at 0.8 and 0.6.
func DefaultConfig() Config {
	return Config{
		Weights: map[domain.Verdict]float64{
			domain.VerdictTrue:        1.0,
			domain.VerdictMostlyTrue:  0.8,
			domain.VerdictMixed:       0.5,
			domain.VerdictMostlyFalse: 0.2,
			domain.VerdictFalse:       0.0,
		},
		AccurateThreshold: 0.8,
		MixedThreshold:    0.6,
	}
}

// Score computes overall accuracy as the arithmetic mean of the verdict
// point values across all analyzed segments; zero segments score 0.
func Score(segments []domain.AnalyzedSegment, cfg Config) float64 {
	if len(segments) == 0 {
		return 0
	}

	total := 0.0
	for _, seg := range segments {
		total += cfg.Weights[seg.Judgment.Verdict]
	}
	return total / float64(len(segments))
}

// KeyFindings derives the narrative summary strings: segment count,
// true/false counts, mean confidence, and a qualitative accuracy bucket.
func KeyFindings(segments []domain.AnalyzedSegment, accuracy float64, cfg Config) []string {
	findings := []string{
		fmt.Sprintf("Analyzed %d factual claims from the transcript", len(segments)),
	}

	if len(segments) == 0 {
		return findings
	}

	trueCount, falseCount := 0, 0
	confidenceTotal := 0.0
	for _, seg := range segments {
		switch seg.Judgment.Verdict {
		case domain.VerdictTrue:
			trueCount++
		case domain.VerdictFalse:
			falseCount++
		}
		confidenceTotal += seg.Judgment.Confidence
	}

	findings = append(findings,
		fmt.Sprintf("%d claims verified as true", trueCount),
		fmt.Sprintf("%d claims rated false", falseCount),
		fmt.Sprintf("Average verification confidence: %.0f%%", confidenceTotal/float64(len(segments))*100),
		accuracyBucket(accuracy, cfg),
	)

	return findings
}

func accuracyBucket(accuracy float64, cfg Config) string {
	switch {
	case accuracy >= cfg.AccurateThreshold:
		return "Content is primarily accurate"
	case accuracy >= cfg.MixedThreshold:
		return "Content has mixed accuracy"
	default:
		return "Content contains questionable claims"
	}
}
