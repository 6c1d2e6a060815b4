package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLocator(t *testing.T, handler http.HandlerFunc) *IPLocator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	l := NewIPLocator()
	l.Endpoint = srv.URL
	return l
}

func TestLocate(t *testing.T) {
	l := testLocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","city":"Haifa","lat":32.79,"lon":34.98}`))
	})

	got, err := l.Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got.Name != "Haifa" || got.Lat != 32.79 || got.Lon != 34.98 {
		t.Errorf("unexpected location: %+v", got)
	}
}

func TestLocateFailureStatus(t *testing.T) {
	l := testLocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	})

	if _, err := l.Locate(context.Background()); err == nil {
		t.Error("expected error on fail status")
	}
}

func TestLocateHTTPError(t *testing.T) {
	l := testLocator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	})

	if _, err := l.Locate(context.Background()); err == nil {
		t.Error("expected error on 429")
	}
}
