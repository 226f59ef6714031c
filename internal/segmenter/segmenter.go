package segmenter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"FactScanner/internal/domain"
)

const (
	defaultMinChars = 20

	// spacing used when the total duration is unknown.
	fallbackSpacingSeconds = 15
)

var sentenceBoundaryExpr = regexp.MustCompile(`[.!?]+`)

// placeholderText keeps downstream stages well-defined when filtering
// leaves nothing checkable.
const placeholderText = "No checkable statements were found in the transcript."

// Segmenter splits transcript text into timestamped, independently
// checkable units. Splitting is deterministic for identical input.
type Segmenter struct {
	minChars int
}

// New builds a Segmenter; minChars <= 0 selects the default threshold.
func New(minChars int) *Segmenter {
	if minChars <= 0 {
		minChars = defaultMinChars
	}
	return &Segmenter{minChars: minChars}
}

// Split produces an ordered, never-empty sequence of segments. Fragments
// shorter than the minimum length are dropped as noise. Timestamps are
// synthesized: distributed proportionally across totalSeconds when known,
// evenly spaced otherwise.
func (s *Segmenter) Split(text string, totalSeconds int) []domain.Segment {
	sentences := splitSentences(text)

	retained := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		if len(sentence) < s.minChars {
			continue
		}
		retained = append(retained, sentence)
	}

	if len(retained) == 0 {
		fallback := strings.TrimSpace(text)
		if fallback == "" {
			fallback = placeholderText
		}
		return []domain.Segment{{ID: 1, Timestamp: formatTimestamp(0), Text: fallback}}
	}

	segments := make([]domain.Segment, 0, len(retained))
	for i, sentence := range retained {
		offset := i * fallbackSpacingSeconds
		if totalSeconds > 0 {
			offset = i * totalSeconds / len(retained)
		}
		segments = append(segments, domain.Segment{
			ID:        i + 1,
			Timestamp: formatTimestamp(offset),
			Text:      sentence,
		})
	}

	return segments
}

func splitSentences(text string) []string {
	parts := sentenceBoundaryExpr.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		sentence := strings.Join(strings.Fields(part), " ")
		if sentence == "" {
			continue
		}
		sentences = append(sentences, sentence)
	}
	return sentences
}

func formatTimestamp(totalSeconds int) string {
	if totalSeconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// ParseDurationLabel converts a "12:34" or "1:02:34" label into seconds.
// Unparseable labels yield 0, which selects evenly spaced timestamps.
func ParseDurationLabel(label string) int {
	parts := strings.Split(strings.TrimSpace(label), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}
