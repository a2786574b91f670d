package prom

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

func TestGenerateMetrics(t *testing.T) {
	m := New()
	ctx := context.Background()

	m.OnGenerateComplete(ctx, 1, []string{"png"}, 10*time.Millisecond, nil)
	m.OnGenerateComplete(ctx, 2, []string{"png"}, 10*time.Millisecond, nil)
	m.OnGenerateComplete(ctx, 0, nil, 0, errs.New(errs.ErrCodeInvalidDisplay, "bad"))

	if got := testutil.ToFloat64(m.generated.WithLabelValues("OK")); got != 2 {
		t.Errorf("OK generations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.generated.WithLabelValues("INVALID_DISPLAY")); got != 1 {
		t.Errorf("INVALID_DISPLAY generations = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.genLatency); got != 1 {
		t.Errorf("latency series = %d, want 1", got)
	}
}

func TestHTTPMetrics(t *testing.T) {
	m := New()
	ctx := context.Background()

	m.OnResponse(ctx, "GET", "/display/{id}", 200, time.Millisecond)
	m.OnResponse(ctx, "GET", "/display/{id}", 400, time.Millisecond)
	m.OnRateLimited(ctx, "/display/{id}/image.png")

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/display/{id}", "200")); got != 1 {
		t.Errorf("200 requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rateLimited.WithLabelValues("/display/{id}/image.png")); got != 1 {
		t.Errorf("rate limited = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.OnGenerateComplete(context.Background(), 1, nil, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", MetricsPath, nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(string(body), "babelgallery_generations_total") {
		t.Error("metrics output missing babelgallery_generations_total")
	}
}
