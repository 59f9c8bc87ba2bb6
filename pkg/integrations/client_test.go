package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cliscribe/cliscribe/pkg/httputil"
)

func newTestCache(t *testing.T) *httputil.Cache {
	t.Helper()
	c, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return c
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(newTestCache(t), nil)
	client.SetHTTPClient(server.Client())

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientHeadersMerged(t *testing.T) {
	var gotDefault, gotCustom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDefault = r.Header.Get("X-Default")
		gotCustom = r.Header.Get("X-Custom")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(newTestCache(t), map[string]string{"X-Default": "default"})
	client.SetHTTPClient(server.Client())

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Custom": "custom"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotDefault != "default" || gotCustom != "custom" {
		t.Errorf("headers = %q/%q, want default/custom", gotDefault, gotCustom)
	}
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(newTestCache(t), nil)
	client.SetHTTPClient(server.Client())

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestClientSend(t *testing.T) {
	var gotMethod, gotContentType string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"state": "closed"})
	}))
	defer server.Close()

	client := NewClient(newTestCache(t), nil)
	client.SetHTTPClient(server.Client())

	var resp map[string]string
	err := client.Send(context.Background(), http.MethodPatch, server.URL,
		map[string]string{"state": "closed"}, &resp)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotPayload["state"] != "closed" {
		t.Errorf("payload = %v", gotPayload)
	}
	if resp["state"] != "closed" {
		t.Errorf("response = %v", resp)
	}
}

func TestCachedUsesCacheOnSecondCall(t *testing.T) {
	calls := 0
	client := NewClient(newTestCache(t), nil)

	fetch := func(v *string) func() error {
		return func() error {
			calls++
			*v = "fetched"
			return nil
		}
	}

	for i := 0; i < 2; i++ {
		var v string
		if err := client.Cached(context.Background(), "key", false, &v, fetch(&v)); err != nil {
			t.Fatalf("Cached() error: %v", err)
		}
		if v != "fetched" {
			t.Errorf("call %d value = %q", i, v)
		}
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

func TestCachedRefreshBypassesCache(t *testing.T) {
	calls := 0
	client := NewClient(newTestCache(t), nil)

	for i := 0; i < 2; i++ {
		var v string
		err := client.Cached(context.Background(), "key", true, &v, func() error {
			calls++
			v = "fetched"
			return nil
		})
		if err != nil {
			t.Fatalf("Cached() error: %v", err)
		}
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2", calls)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code      int
		wantErr   bool
		retryable bool
	}{
		{http.StatusOK, false, false},
		{http.StatusCreated, false, false},
		{http.StatusNotFound, true, false},
		{http.StatusForbidden, true, false},
		{http.StatusTooManyRequests, true, true},
		{http.StatusBadGateway, true, true},
	}
	for _, tt := range tests {
		err := checkStatus(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkStatus(%d) = %v, wantErr %v", tt.code, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			var re *httputil.RetryableError
			if got := errors.As(err, &re); got != tt.retryable {
				t.Errorf("checkStatus(%d) retryable = %v, want %v", tt.code, got, tt.retryable)
			}
		}
	}
}
