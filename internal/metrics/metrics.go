package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the analysis pipeline.
type Metrics struct {
	registry                *prometheus.Registry
	runsTotal               prometheus.Counter
	runsDegradedTotal       prometheus.Counter
	oracleCallsTotal        prometheus.Counter
	oracleFailuresTotal     prometheus.Counter
	heuristicJudgmentsTotal prometheus.Counter
	strategyFailuresTotal   prometheus.Counter
	transcriptFallbacks     prometheus.Counter
	activeRuns              prometheus.Gauge
	requestsTotal           prometheus.Counter
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the pipeline.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	runsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_runs_total",
		Help: "Total number of analysis runs started",
	})
	runsDegradedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_runs_degraded_total",
		Help: "Total number of runs that finished with a degraded report",
	})
	oracleCallsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_oracle_calls_total",
		Help: "Total number of reasoning oracle calls attempted",
	})
	oracleFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_oracle_failures_total",
		Help: "Total number of oracle calls that failed or returned unusable payloads",
	})
	heuristicJudgmentsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_heuristic_judgments_total",
		Help: "Total number of segment judgments produced by the local heuristic fallback",
	})
	strategyFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_strategy_failures_total",
		Help: "Total number of failed transcript acquisition strategy attempts",
	})
	transcriptFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_transcript_fallbacks_total",
		Help: "Total number of runs that fell back to generated or built-in transcript content",
	})
	activeRuns := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "factscanner_active_runs",
		Help: "Number of analysis runs currently in flight",
	})
	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "factscanner_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		runsTotal,
		runsDegradedTotal,
		oracleCallsTotal,
		oracleFailuresTotal,
		heuristicJudgmentsTotal,
		strategyFailuresTotal,
		transcriptFallbacks,
		activeRuns,
		requestsTotal,
		errorsTotal,
	)

	return &Metrics{
		registry:                registry,
		runsTotal:               runsTotal,
		runsDegradedTotal:       runsDegradedTotal,
		oracleCallsTotal:        oracleCallsTotal,
		oracleFailuresTotal:     oracleFailuresTotal,
		heuristicJudgmentsTotal: heuristicJudgmentsTotal,
		strategyFailuresTotal:   strategyFailuresTotal,
		transcriptFallbacks:     transcriptFallbacks,
		activeRuns:              activeRuns,
		requestsTotal:           requestsTotal,
		errorsTotal:             errorsTotal,
	}
}

// IncRuns increments the started-runs counter. Safe on a nil receiver so
// components can treat metrics as optional.
func (m *Metrics) IncRuns() {
	if m != nil {
		m.runsTotal.Inc()
	}
}

// IncRunsDegraded increments the degraded-runs counter.
func (m *Metrics) IncRunsDegraded() {
	if m != nil {
		m.runsDegradedTotal.Inc()
	}
}

// IncOracleCalls increments the oracle call counter.
func (m *Metrics) IncOracleCalls() {
	if m != nil {
		m.oracleCallsTotal.Inc()
	}
}

// IncOracleFailures increments the oracle failure counter.
func (m *Metrics) IncOracleFailures() {
	if m != nil {
		m.oracleFailuresTotal.Inc()
	}
}

// IncHeuristicJudgments increments the heuristic fallback counter.
func (m *Metrics) IncHeuristicJudgments() {
	if m != nil {
		m.heuristicJudgmentsTotal.Inc()
	}
}

// IncStrategyFailures increments the failed-strategy counter.
func (m *Metrics) IncStrategyFailures() {
	if m != nil {
		m.strategyFailuresTotal.Inc()
	}
}

// IncTranscriptFallbacks increments the transcript fallback counter.
func (m *Metrics) IncTranscriptFallbacks() {
	if m != nil {
		m.transcriptFallbacks.Inc()
	}
}

// RunStarted marks a run in flight.
func (m *Metrics) RunStarted() {
	if m != nil {
		m.activeRuns.Inc()
	}
}

// RunFinished marks a run complete.
func (m *Metrics) RunFinished() {
	if m != nil {
		m.activeRuns.Dec()
	}
}

// IncRequests increments the HTTP request counter.
func (m *Metrics) IncRequests() {
	if m != nil {
		m.requestsTotal.Inc()
	}
}

// IncErrors increments the HTTP error counter.
func (m *Metrics) IncErrors() {
	if m != nil {
		m.errorsTotal.Inc()
	}
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
