package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/ratelimit"
)

func TestRequestLogger_LogsStatusAndPath(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()

	RequestLogger(handler, logger).ServeHTTP(rec, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" {
		t.Fatalf("expected method GET, got %v", fields["method"])
	}
	if fields["path"] != "/bookings" {
		t.Fatalf("expected path /bookings, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusCreated) {
		t.Fatalf("expected status 201, got %v", fields["status"])
	}
}

func TestRequestLogger_DefaultsTo200(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	RequestLogger(handler, logger).ServeHTTP(rec, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Fatalf("expected default status 200, got %v", got)
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := ratelimit.New(ratelimit.NewMemoryStore(clk), 2, time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(limiter, zap.NewNop(), next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = "10.0.0.1:4242"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
}

func TestRateLimit_SeparateClientsSeparateBudgets(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := ratelimit.New(ratelimit.NewMemoryStore(clk), 1, time.Minute)

	handler := RateLimit(limiter, zap.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	first.RemoteAddr = "10.0.0.1:4242"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for first client, got %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	second.RemoteAddr = "10.0.0.2:4242"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for second client, got %d", rec.Code)
	}
}

type failingLimitStore struct{}

func (failingLimitStore) Incr(context.Context, string, time.Duration) (int, error) {
	return 0, errors.New("store down")
}

func TestRateLimit_StoreErrorFailsOpen(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(failingLimitStore{}, 1, time.Minute)
	handler := RateLimit(limiter, zap.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected fail-open 200, got %d", rec.Code)
	}
}
