package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Location is a fixed place used when geolocation is unavailable.
type Location struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// FeedSource is one RSS feed for the rss news-source mode. Items land in
// Category when set, otherwise they are classified by keyword.
type FeedSource struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category,omitempty"`
	Enabled  bool   `yaml:"enabled"`
}

type Config struct {
	APIBaseURL   string       `yaml:"api_base_url"`
	NewsURL      string       `yaml:"news_url"`
	NewsSource   string       `yaml:"news_source"` // "api" or "rss"
	NewsInterval string       `yaml:"news_interval"`
	Tick         string       `yaml:"tick"`
	HomeLocation Location     `yaml:"home_location"`
	Geolocate    bool         `yaml:"geolocate"`
	Feeds        []FeedSource `yaml:"feeds,omitempty"`
}

// NewsIntervalDuration returns how long cached news stays fresh.
func (c *Config) NewsIntervalDuration() time.Duration {
	d, err := time.ParseDuration(c.NewsInterval)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// TickDuration returns the background refresh cadence.
func (c *Config) TickDuration() time.Duration {
	d, err := time.ParseDuration(c.Tick)
	if err != nil {
		return time.Minute
	}
	return d
}

func (c *Config) EnabledFeeds() []FeedSource {
	var out []FeedSource
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newpage", "config.yaml")
}

func SettingsPath() string {
	return filepath.Join(xdg.ConfigHome, "newpage", "settings.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "newpage", "newpage.db")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "newpage", "newpage.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run.
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if err := checkURL("api_base_url", cfg.APIBaseURL); err != nil {
		return err
	}
	if err := checkURL("news_url", cfg.NewsURL); err != nil {
		return err
	}
	if cfg.NewsSource != "api" && cfg.NewsSource != "rss" {
		return fmt.Errorf("news_source must be %q or %q, got %q", "api", "rss", cfg.NewsSource)
	}
	if cfg.HomeLocation.Name == "" {
		return fmt.Errorf("home_location.name is required")
	}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if err := checkURL(fmt.Sprintf("feed %q url", f.Name), f.URL); err != nil {
			return err
		}
	}
	return nil
}

func checkURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	return nil
}
