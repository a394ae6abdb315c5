package collector

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIFetcher_AuthAndDecode(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticks":[{"p":27450.5,"t":1700000000}],"tick_count":1}`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.URL, "secret-key", "")
	payload, err := f.FetchTicks("hyna", "btc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("expected a request id header")
	}
	if !strings.HasSuffix(gotPath, "/api/v1/ticks/hyna:btc") {
		t.Errorf("unexpected path %q", gotPath)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("expected decoded object, got %T", payload)
	}
	if obj["tick_count"] != float64(1) {
		t.Errorf("decode mismatch: %v", obj)
	}
}

func TestAPIFetcher_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.URL, "bad-key", "")
	if _, err := f.FetchTickStats(); err == nil {
		t.Fatal("expected an error for a non-200 response")
	} else if !strings.Contains(err.Error(), "status 403") {
		t.Errorf("error should carry the status, got %v", err)
	}
}

func TestMockFetcher_Samples(t *testing.T) {
	m := &MockFetcher{}

	stats, err := m.FetchTickStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := stats.(map[string]any)
	if len(obj["symbols"].([]any)) == 0 {
		t.Error("sample stats should carry symbols")
	}

	ticks, err := m.FetchTicks("hyna", "btc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ticks.(map[string]any)["ticks"]; !ok {
		t.Error("sample ticks should use the wrapper shape")
	}

	liq, err := m.FetchLiquidationStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := liq.(map[string]any)["windows"]; !ok {
		t.Error("sample liquidations should carry windows")
	}
}
