package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pvolkov/briefly/internal/core/ports"
	"github.com/pvolkov/briefly/internal/observability/metrics"
)

type Router struct {
	pipeline       ports.Pipeline
	balance        ports.BalanceProvider
	metrics        *metrics.HTTPServerMetrics
	service        string
	maxUploadBytes int64
}

func NewRouter(
	pipeline ports.Pipeline,
	balance ports.BalanceProvider,
	m *metrics.HTTPServerMetrics,
	service string,
	maxUploadBytes int64,
) (*Router, error) {
	if _, err := loadContract(); err != nil {
		return nil, err
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}
	return &Router{
		pipeline:       pipeline,
		balance:        balance,
		metrics:        m,
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}, nil
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarise", rt.summarise)
	mux.HandleFunc("POST /response", rt.response)
	mux.HandleFunc("POST /analysis", rt.analysis)
	mux.HandleFunc("GET /balance", rt.balanceHandler)
	mux.HandleFunc("GET /healthz", rt.healthz)
	mux.HandleFunc("GET /openapi.yaml", rt.contract)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	return instrumentMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) contract(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(contractYAML)
}

func (rt *Router) summarise(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sub, err := parseSubmission(w, r, rt.maxUploadBytes)
	if err != nil {
		rt.fail(w, r, "summary", start, err)
		return
	}

	state, err := rt.pipeline.Submit(r.Context(), sub)
	if err != nil {
		rt.fail(w, r, "summary", start, err)
		return
	}

	rt.recordStage("summary", "ok", start)
	writeJSON(w, http.StatusOK, state)
}

func (rt *Router) response(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	state, direction, err := parseSummaryState(r)
	if err != nil {
		rt.fail(w, r, "response", start, err)
		return
	}

	next, err := rt.pipeline.AdvanceToResponse(r.Context(), state, direction)
	if err != nil {
		rt.fail(w, r, "response", start, err)
		return
	}

	rt.recordStage("response", "ok", start)
	writeJSON(w, http.StatusOK, next)
}

func (rt *Router) analysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	state, extra, err := parseResponseState(r)
	if err != nil {
		rt.fail(w, r, "analysis", start, err)
		return
	}

	result, err := rt.pipeline.AdvanceToAnalysis(r.Context(), state, extra)
	if err != nil {
		rt.fail(w, r, "analysis", start, err)
		return
	}

	rt.recordStage("analysis", "ok", start)
	writeJSON(w, http.StatusOK, result)
}

// balanceHandler mirrors the upstream response as-is: body and status code
// both pass through, success and error alike.
func (rt *Router) balanceHandler(w http.ResponseWriter, r *http.Request) {
	info, err := rt.balance.Balance(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(info.StatusCode)
	_, _ = w.Write(info.Body)
}

func (rt *Router) fail(w http.ResponseWriter, r *http.Request, stage string, start time.Time, err error) {
	status := mapErrorToHTTPStatus(err)
	category := errorCategory(err)

	// A caller that hung up is not a server fault; keep it out of the error
	// counts and the warning log.
	logFn := slog.Warn
	outcome := "error"
	if category == "canceled" {
		logFn = slog.Info
		outcome = "canceled"
	}
	logFn("pipeline_stage_failed",
		"request_id", requestIDFromContext(r.Context()),
		"stage", stage,
		"category", category,
		"status", status,
		"error", err,
	)
	rt.recordStage(stage, outcome, start)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (rt *Router) recordStage(stage, status string, start time.Time) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordStage(rt.service, stage, status, time.Since(start))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
