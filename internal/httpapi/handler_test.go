package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FactScanner/internal/domain"
	"FactScanner/internal/logging"
	"FactScanner/internal/ports"
)

type fakePipeline struct {
	report domain.Report
}

func (f *fakePipeline) Analyze(ctx context.Context, reference string, progress ports.ProgressFunc) domain.Report {
	if progress != nil {
		progress([]domain.PipelineStep{{Name: "acquire_transcript", Status: domain.StepProcessing}})
		progress([]domain.PipelineStep{{Name: "acquire_transcript", Status: domain.StepCompleted}})
	}
	return f.report
}

func testReport() domain.Report {
	return domain.Report{
		Platform:        "youtube",
		Title:           "Science Myths",
		OverallAccuracy: 0.5,
		KeyFindings:     []string{"Analyzed 2 factual claims from the transcript"},
		Status:          domain.RunCompleted,
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakePipeline{report: testReport()}, logging.New("error", "text"))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url": "https://youtu.be/dQw4w9WgXcQ"}`))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var report domain.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.Title != "Science Myths" {
		t.Errorf("unexpected title: %q", report.Title)
	}
	if report.Status != domain.RunCompleted {
		t.Errorf("unexpected status: %q", report.Status)
	}
}

func TestAnalyzeEndpointBadBody(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakePipeline{report: testReport()}, logging.New("error", "text"))

	for _, body := range []string{"", "{}", `{"url": "  "}`, "not json"} {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Analyze(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestAnalyzeStreamEmitsProgressAndReport(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakePipeline{report: testReport()}, logging.New("error", "text"))

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/stream?url=https://youtu.be/dQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()

	h.AnalyzeStream(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q, want text/event-stream", ct)
	}

	body := rec.Body.String()
	if strings.Count(body, "event: progress") != 2 {
		t.Errorf("expected 2 progress events, body:\n%s", body)
	}
	if !strings.Contains(body, "event: report") {
		t.Errorf("expected terminal report event, body:\n%s", body)
	}
	if !strings.Contains(body, "Science Myths") {
		t.Errorf("report payload missing, body:\n%s", body)
	}
}

func TestAnalyzeStreamRequiresURL(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakePipeline{report: testReport()}, logging.New("error", "text"))

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/stream", nil)
	rec := httptest.NewRecorder()

	h.AnalyzeStream(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakePipeline{report: testReport()}, logging.New("error", "text"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
