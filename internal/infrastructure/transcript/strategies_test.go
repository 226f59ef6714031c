package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="4.2">Water boils at 100 degrees Celsius</text>
  <text start="4.2" dur="3.1">at sea level.</text>
  <text start="7.3" dur="2.0"> </text>
</transcript>`

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":        "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s": "dQw4w9WgXcQ",
		"not a reference": "",
		"":                "",
	}

	for reference, want := range cases {
		if got := extractVideoID(reference); got != want {
			t.Errorf("extractVideoID(%q) = %q, want %q", reference, got, want)
		}
	}
}

func TestFetchTimedText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	text, err := fetchTimedText(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("fetchTimedText error: %v", err)
	}

	want := "Water boils at 100 degrees Celsius at sea level."
	if text != want {
		t.Errorf("unexpected transcript: %q, want %q", text, want)
	}
}

func TestFetchTimedTextEmptyDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<transcript></transcript>`))
	}))
	defer server.Close()

	if _, err := fetchTimedText(context.Background(), server.Client(), server.URL); err == nil {
		t.Error("expected error for empty timed text document")
	}
}

func TestNormalizedStrategyAttempt(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "dQw4w9WgXcQ" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	strategy := NewNormalizedStrategy(server.Client())
	strategy.base = server.URL

	content, err := strategy.Attempt(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Attempt error: %v", err)
	}
	if content.RawText == "" {
		t.Fatal("expected non-empty transcript")
	}
	if content.Strategy != "normalized" {
		t.Errorf("strategy descriptor = %q, want normalized", content.Strategy)
	}
}

func TestDirectStrategyRejectsUnusableReference(t *testing.T) {
	t.Parallel()

	strategy := NewDirectStrategy(&http.Client{})

	if _, err := strategy.Attempt(context.Background(), "https://example.org/no-video-here"); err == nil {
		t.Error("expected error for reference without a v parameter")
	}
}

func TestParseISODuration(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"PT10M23S":   623,
		"PT1H2M3S":   3723,
		"PT45S":      45,
		"PT2H":       7200,
		"not-a-time": 0,
	}

	for iso, want := range cases {
		if got := parseISODuration(iso); got != want {
			t.Errorf("parseISODuration(%q) = %d, want %d", iso, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	if got := formatDuration(623); got != "10:23" {
		t.Errorf("formatDuration(623) = %q, want 10:23", got)
	}
	if got := formatDuration(3723); got != "1:02:03" {
		t.Errorf("formatDuration(3723) = %q, want 1:02:03", got)
	}
}
