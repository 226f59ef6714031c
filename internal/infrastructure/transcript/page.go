package transcript

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const watchBaseURL = "https://www.youtube.com/watch?v="

var isoDurationExpr = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// videoMetadata is the best-effort title and duration scraped from the
// watch page. Zero values mean the page did not expose them.
type videoMetadata struct {
	Title    string
	Duration string
}

// fetchMetadata scrapes the watch page for title and duration. Failures are
// reported so the cascade can log them, but callers fall back to defaults.
func fetchMetadata(ctx context.Context, client *http.Client, reference string) (videoMetadata, error) {
	id := extractVideoID(reference)
	if id == "" {
		return videoMetadata{}, fmt.Errorf("no video id in reference")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchBaseURL+id, nil)
	if err != nil {
		return videoMetadata{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "FactScanner/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return videoMetadata{}, fmt.Errorf("request watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return videoMetadata{}, fmt.Errorf("watch page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return videoMetadata{}, fmt.Errorf("parse watch page: %w", err)
	}

	meta := videoMetadata{}

	if title, ok := doc.Find(`meta[name="title"]`).First().Attr("content"); ok {
		meta.Title = strings.TrimSpace(title)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSuffix(strings.TrimSpace(doc.Find("title").First().Text()), " - YouTube")
	}

	if iso, ok := doc.Find(`meta[itemprop="duration"]`).First().Attr("content"); ok {
		if seconds := parseISODuration(iso); seconds > 0 {
			meta.Duration = formatDuration(seconds)
		}
	}

	return meta, nil
}

func parseISODuration(iso string) int {
	match := isoDurationExpr.FindStringSubmatch(strings.TrimSpace(iso))
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return hours*3600 + minutes*60 + seconds
}

func formatDuration(totalSeconds int) string {
	if totalSeconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
