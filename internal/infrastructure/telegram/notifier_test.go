package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FactScanner/internal/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		Title:           "Science Myths",
		OverallAccuracy: 0.72,
		KeyFindings: []string{
			"Analyzed 3 factual claims from the transcript",
			"1 claim contradicted by available evidence",
		},
		Status: domain.RunCompleted,
	}
}

func TestPublishReportSendsDigest(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier("token", "chat-42")
	n.apiBase = server.URL

	if err := n.PublishReport(context.Background(), sampleReport()); err != nil {
		t.Fatalf("PublishReport: %v", err)
	}

	if got := form["chat_id"]; len(got) != 1 || got[0] != "chat-42" {
		t.Errorf("chat_id = %v", got)
	}
	if got := form["parse_mode"]; len(got) != 1 || got[0] != "Markdown" {
		t.Errorf("parse_mode = %v", got)
	}

	text := strings.Join(form["text"], "")
	if !strings.Contains(text, "*Science Myths*") {
		t.Errorf("digest missing title line:\n%s", text)
	}
	if !strings.Contains(text, "Overall accuracy: 72%") {
		t.Errorf("digest missing accuracy line:\n%s", text)
	}
	if strings.Count(text, "- ") != 2 {
		t.Errorf("digest should list each key finding:\n%s", text)
	}
}

func TestPublishReportServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := NewNotifier("token", "chat-42")
	n.apiBase = server.URL

	if err := n.PublishReport(context.Background(), sampleReport()); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestPublishReportMisconfigured(t *testing.T) {
	t.Parallel()

	n := NewNotifier("", "")
	if err := n.PublishReport(context.Background(), sampleReport()); err == nil {
		t.Error("expected error when token and chat are empty")
	}
}
