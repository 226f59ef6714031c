package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"FactScanner/internal/domain"
	"FactScanner/internal/ports"
)

// Analyzer runs one analysis and always returns a well-formed report.
type Analyzer interface {
	Analyze(ctx context.Context, reference string, progress ports.ProgressFunc) domain.Report
}

// Handler exposes the analysis pipeline over HTTP.
type Handler struct {
	pipeline Analyzer
	log      *slog.Logger
}

// NewHandler returns a Handler driving the given pipeline.
func NewHandler(pipeline Analyzer, log *slog.Logger) *Handler {
	return &Handler{pipeline: pipeline, log: log}
}

type analyzeRequest struct {
	URL string `json:"url"`
}

// Analyze handles POST /api/analyze. Body: { "url": "..." }. Responds with
// the full report; a degraded run still yields 200 with status "degraded".
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	reference, ok := h.reference(w, r)
	if !ok {
		return
	}

	report := h.pipeline.Analyze(r.Context(), reference, nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.log.Error("encode report failed", slog.String("error", err.Error()))
	}
}

// AnalyzeStream handles GET /api/analyze/stream?url=... as Server-Sent
// Events: one "progress" event per step snapshot, then a terminal "report"
// event with the full report.
func (h *Handler) AnalyzeStream(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(r.URL.Query().Get("url"))
	if reference == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.log.Error("response writer does not support streaming")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	report := h.pipeline.Analyze(r.Context(), reference, func(steps []domain.PipelineStep) {
		writeEvent(w, "progress", steps)
		flusher.Flush()
	})

	writeEvent(w, "report", report)
	flusher.Flush()
}

func (h *Handler) reference(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid analyze body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return "", false
	}

	reference := strings.TrimSpace(req.URL)
	if reference == "" {
		w.WriteHeader(http.StatusBadRequest)
		return "", false
	}

	return reference, true
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeEvent(w http.ResponseWriter, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_, _ = w.Write([]byte("event: " + event + "\ndata: " + string(data) + "\n\n"))
}
