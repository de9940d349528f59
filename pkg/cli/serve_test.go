package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getmockd/spantext/internal/workload"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestWorker(t *testing.T) *workload.Worker {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return workload.New(tp.Tracer("test"), workload.WithStepDelay(0))
}

func TestHandleWork(t *testing.T) {
	worker := newTestWorker(t)
	handler := handleWork(worker)

	do := func(t *testing.T, target string) (*httptest.ResponseRecorder, workResponse) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		var body workResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return rec, body
	}

	t.Run("success", func(t *testing.T) {
		rec, body := do(t, "/work")
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
		if body.Status != "success" {
			t.Errorf("body status: got %q, want %q", body.Status, "success")
		}
		if got := rec.Header().Get("Content-Type"); got != "application/json" {
			t.Errorf("content type: got %q, want application/json", got)
		}
	})

	t.Run("failure", func(t *testing.T) {
		rec, body := do(t, "/work?fail=true")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		if !strings.Contains(body.Error, "error flag") {
			t.Errorf("error body: got %q", body.Error)
		}
	})

	t.Run("double variant", func(t *testing.T) {
		rec, body := do(t, "/work?double=true")
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
		if body.Status != "success" {
			t.Errorf("body status: got %q, want %q", body.Status, "success")
		}
	})

	t.Run("double variant failure", func(t *testing.T) {
		rec, _ := do(t, "/work?double=true&fail=true")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
		}
	})

	t.Run("malformed fail value treated as false", func(t *testing.T) {
		rec, _ := do(t, "/work?fail=banana")
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handleHealthz(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok\n" {
		t.Errorf("body: got %q, want %q", rec.Body.String(), "ok\n")
	}
}

func TestNewServeHandler(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	worker := workload.New(tp.Tracer("test"), workload.WithStepDelay(0))
	handler := newServeHandler(worker, tp)

	t.Run("healthz is not traced", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
		}
		if n := len(rec.Ended()); n != 0 {
			t.Errorf("expected no spans for healthz, got %d", n)
		}
	})

	t.Run("work produces server and workload spans", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
		}

		names := make(map[string]bool)
		for _, s := range rec.Ended() {
			names[s.Name()] = true
		}
		for _, want := range []string{"spantext.serve", "failable_work", "expensive_step_1", "expensive_step_2"} {
			if !names[want] {
				t.Errorf("missing span %q in %v", want, names)
			}
		}
	})
}
