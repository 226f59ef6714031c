package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var videoIDExpr = regexp.MustCompile(`(?:v=|youtu\.be/|/embed/|/shorts/|/live/)([A-Za-z0-9_-]{11})`)

var bareIDExpr = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// extractVideoID pulls the canonical 11-character identifier out of any of
// the common reference forms. An empty result means no identifier was found.
func extractVideoID(reference string) string {
	reference = strings.TrimSpace(reference)
	if bareIDExpr.MatchString(reference) {
		return reference
	}
	if match := videoIDExpr.FindStringSubmatch(reference); len(match) == 2 {
		return match[1]
	}
	return ""
}

// timedTextDocument mirrors the public captions payload:
// <transcript><text start="1.2" dur="3.4">...</text>...</transcript>
type timedTextDocument struct {
	XMLName xml.Name        `xml:"transcript"`
	Lines   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// fetchTimedText downloads one captions document and joins its lines into a
// single transcript string. An empty transcript is reported as an error so
// callers can treat it like any other failed attempt.
func fetchTimedText(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "FactScanner/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request timed text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timed text endpoint returned %s", resp.Status)
	}

	var doc timedTextDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("parse timed text: %w", err)
	}

	parts := make([]string, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		text := strings.Join(strings.Fields(line.Text), " ")
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}

	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return "", fmt.Errorf("timed text document is empty")
	}

	return joined, nil
}
