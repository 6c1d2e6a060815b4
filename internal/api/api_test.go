package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.URL+"/news")
}

func TestWeather(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Error("expected lat/lon query params")
		}
		w.Write([]byte(`{"name":"Jerusalem","main":{"temp":21.5,"humidity":40},"weather":[{"description":"clear sky"}]}`))
	})

	got, err := c.Weather(context.Background(), 31.7683, 35.2137)
	if err != nil {
		t.Fatalf("weather: %v", err)
	}
	if got.Name != "Jerusalem" || got.Main.Temp != 21.5 {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.Condition() != "clear sky" {
		t.Errorf("condition = %q", got.Condition())
	}
}

func TestWeatherByName(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("location") != "Jerusalem" {
			t.Errorf("expected location param, got %q", r.URL.Query().Get("location"))
		}
		w.Write([]byte(`{"name":"Jerusalem","main":{"temp":18},"weather":[]}`))
	})

	got, err := c.WeatherByName(context.Background(), "Jerusalem")
	if err != nil {
		t.Fatalf("weather by name: %v", err)
	}
	if got.Condition() != "" {
		t.Errorf("expected empty condition, got %q", got.Condition())
	}
}

func TestCurrency(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"ILS":3.6,"EUR":0.9}}`))
	})

	got, err := c.Currency(context.Background())
	if err != nil {
		t.Fatalf("currency: %v", err)
	}
	if got.BaseCode != "USD" {
		t.Errorf("base = %q", got.BaseCode)
	}
	if rate := got.RateToILS("USD", 1); rate != 3.6 {
		t.Errorf("RateToILS(USD) = %v, want 3.6", rate)
	}
	if rate := got.RateToILS("EUR", 1); rate != 4 {
		t.Errorf("RateToILS(EUR) = %v, want 4", rate)
	}
	if rate := got.RateToILS("GBP", 1); rate != 0 {
		t.Errorf("missing code should yield 0, got %v", rate)
	}
}

func TestProverb(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"proverb":"measure twice, cut once"}`))
	})

	got, err := c.Proverb(context.Background())
	if err != nil {
		t.Fatalf("proverb: %v", err)
	}
	if got.Proverb == "" {
		t.Error("expected proverb text")
	}
}

func TestNews(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","data":{"Tech":[{"title":"T","link":"https://x","timestamp":2}]}}`))
	})

	got, err := c.News(context.Background())
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	if len(got["Tech"]) != 1 {
		t.Errorf("expected 1 Tech item, got %d", len(got["Tech"]))
	}
}

func TestNewsBadStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","data":{}}`))
	})

	if _, err := c.News(context.Background()); err == nil {
		t.Error("non-ok status must be an error")
	}
}

func TestHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	if _, err := c.Currency(context.Background()); err == nil {
		t.Error("expected error on 502")
	}
}

func TestCorruptBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if _, err := c.Proverb(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}
