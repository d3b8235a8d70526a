package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

func TestGetJSONRetriesServerError(t *testing.T) {
	var count int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != DefaultUserAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		n := atomic.AddInt32(&count, 1)
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"x"}`))
			return
		}
		_, _ = w.Write([]byte(`{"chain_id":42161}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 1)
	var out map[string]any
	if _, err := GetJSON(context.Background(), client, srv.URL, &out); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if out["chain_id"] != float64(42161) {
		t.Fatalf("unexpected response: %#v", out)
	}
	if atomic.LoadInt32(&count) != 2 {
		t.Fatalf("expected one retry, got %d calls", count)
	}
}

func TestDoMapsStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		code   clierr.Code
	}{
		{http.StatusTooManyRequests, clierr.CodeRateLimited},
		{http.StatusForbidden, clierr.CodeAuth},
		{http.StatusBadGateway, clierr.CodeUnavailable},
		{http.StatusNotFound, clierr.CodeUnsupported},
	}
	for _, tc := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := GetJSON(context.Background(), New(time.Second, 0), srv.URL, nil)
		srv.Close()
		cErr, ok := clierr.As(err)
		if !ok || cErr.Code != tc.code {
			t.Fatalf("status %d: expected code %d, got %v", tc.status, tc.code, err)
		}
	}
}

func TestDoJSONRejectsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var out map[string]any
	_, err := GetJSON(context.Background(), New(time.Second, 0), srv.URL, &out)
	cErr, ok := clierr.As(err)
	if !ok || cErr.Code != clierr.CodeUnavailable {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
