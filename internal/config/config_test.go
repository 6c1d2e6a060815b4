package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.APIBaseURL == "" {
		t.Error("expected api_base_url to be set")
	}
	if cfg.NewsSource != "api" {
		t.Errorf("expected default news_source api, got %q", cfg.NewsSource)
	}
	if cfg.HomeLocation.Name != "Jerusalem" {
		t.Errorf("expected Jerusalem home location, got %q", cfg.HomeLocation.Name)
	}
}

func TestDurations(t *testing.T) {
	cfg := &Config{NewsInterval: "5m", Tick: "30s"}
	if cfg.NewsIntervalDuration() != 5*time.Minute {
		t.Errorf("news interval = %v", cfg.NewsIntervalDuration())
	}
	if cfg.TickDuration() != 30*time.Second {
		t.Errorf("tick = %v", cfg.TickDuration())
	}

	cfg = &Config{NewsInterval: "bogus", Tick: ""}
	if cfg.NewsIntervalDuration() != 10*time.Minute {
		t.Errorf("expected 10m fallback, got %v", cfg.NewsIntervalDuration())
	}
	if cfg.TickDuration() != time.Minute {
		t.Errorf("expected 1m fallback, got %v", cfg.TickDuration())
	}
}

func TestEnabledFeeds(t *testing.T) {
	cfg := &Config{Feeds: []FeedSource{
		{Name: "A", Enabled: true},
		{Name: "B", Enabled: false},
		{Name: "C", Enabled: true},
	}}
	got := cfg.EnabledFeeds()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("EnabledFeeds = %v", got)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NewsSource != "api" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("expected defaults written to disk on first run")
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad scheme", "api_base_url: ftp://x\nnews_url: https://n\nnews_source: api\nhome_location: {name: J}\n"},
		{"bad source", "api_base_url: https://a\nnews_url: https://n\nnews_source: carrier-pigeon\nhome_location: {name: J}\n"},
		{"missing home", "api_base_url: https://a\nnews_url: https://n\nnews_source: api\n"},
		{"feed without name", "api_base_url: https://a\nnews_url: https://n\nnews_source: rss\nhome_location: {name: J}\nfeeds:\n  - url: https://f\n    enabled: true\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
			t.Fatalf("%s: write: %v", tt.name, err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `api_base_url: https://api.example.com
news_url: https://news.example.com/news
news_source: rss
news_interval: 15m
tick: 45s
home_location:
  name: Haifa
  lat: 32.79
  lon: 34.98
feeds:
  - name: Example
    url: https://example.com/rss
    category: Tech
    enabled: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HomeLocation.Lat != 32.79 {
		t.Errorf("lat = %v", cfg.HomeLocation.Lat)
	}
	if len(cfg.EnabledFeeds()) != 1 {
		t.Errorf("expected 1 enabled feed")
	}
}
