package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestInstrumentWritesAccessLogLine(t *testing.T) {
	logs := captureLogs(t)

	handler := instrumentMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/summarise", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	line := logs.String()
	if !strings.Contains(line, `"msg":"http_request"`) {
		t.Fatalf("expected access log line, got %s", line)
	}
	if !strings.Contains(line, `"method":"POST"`) || !strings.Contains(line, `"path":"/summarise"`) {
		t.Fatalf("expected method and path in log, got %s", line)
	}
	if !strings.Contains(line, `"status":418`) {
		t.Fatalf("expected recorded status in log, got %s", line)
	}
	if !strings.Contains(line, `"bytes":15`) {
		t.Fatalf("expected response size in log, got %s", line)
	}
}

func TestInstrumentPropagatesRequestIDToHandler(t *testing.T) {
	captureLogs(t)

	var seen string
	handler := instrumentMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "caller-id")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if seen != "caller-id" {
		t.Fatalf("expected caller id in handler context, got %q", seen)
	}
	if got := res.Header().Get(requestIDHeader); got != "caller-id" {
		t.Fatalf("expected caller id echoed, got %q", got)
	}
}
