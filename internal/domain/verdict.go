package domain

import "strings"

// Verdict is one of five canonical truthfulness labels.
type Verdict string

const (
	VerdictTrue        Verdict = "true"
	VerdictMostlyTrue  Verdict = "mostly_true"
	VerdictMixed       Verdict = "mixed"
	VerdictMostlyFalse Verdict = "mostly_false"
	VerdictFalse       Verdict = "false"
)

// ParseVerdict normalizes an oracle-provided label to a canonical verdict.
// Anything outside the five labels collapses to VerdictMixed.
func ParseVerdict(raw string) Verdict {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch Verdict(normalized) {
	case VerdictTrue, VerdictMostlyTrue, VerdictMixed, VerdictMostlyFalse, VerdictFalse:
		return Verdict(normalized)
	default:
		return VerdictMixed
	}
}

// Clamp01 bounds confidence and reliability values into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
