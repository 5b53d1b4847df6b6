package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitBlocksOverLimit(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// another client is unaffected
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("other client status = %d", rec.Code)
	}
}

func TestRateLimitEvictsExpiredBuckets(t *testing.T) {
	clock := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	rl := &rateLimiter{
		limit:   5,
		window:  time.Minute,
		clients: map[string]*rateBucket{},
		now:     func() time.Time { return clock },
	}

	for _, addr := range []string{"10.0.0.1:5000", "10.0.0.2:5000", "10.0.0.3:5000"} {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rl.enforce(httptest.NewRecorder(), req)
	}
	if len(rl.clients) != 3 {
		t.Fatalf("expected 3 tracked clients, got %d", len(rl.clients))
	}

	// after the window lapses a single request sweeps the stale entries
	clock = clock.Add(2 * time.Minute)
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.4:5000"
	rl.enforce(httptest.NewRecorder(), req)

	if len(rl.clients) != 1 {
		t.Fatalf("expected stale buckets evicted, got %d tracked clients", len(rl.clients))
	}
	if _, ok := rl.clients["10.0.0.4"]; !ok {
		t.Fatal("expected the fresh client to remain tracked")
	}
}
