// Package settings persists the user's display preferences.
package settings

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Engine is a web search engine the search bar can target.
type Engine struct {
	Name string
	URL  string // query prefix, the escaped terms are appended
}

// Engines in selection order. The first is the default.
var Engines = []Engine{
	{Name: "Google", URL: "https://www.google.com/search?q="},
	{Name: "Bing", URL: "https://www.bing.com/search?q="},
	{Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q="},
	{Name: "Yandex", URL: "https://yandex.com/search/?text="},
}

// SearchURL builds the full search URL for a query.
func (e Engine) SearchURL(query string) string {
	return e.URL + url.QueryEscape(query)
}

// Settings are the user's preferences. The active news category is
// deliberately absent: it is transient UI state, never persisted.
type Settings struct {
	SearchEngine     string   `yaml:"search_engine"`
	HiddenCategories []string `yaml:"hidden_categories,omitempty"`
}

func Default() Settings {
	return Settings{SearchEngine: Engines[0].Name}
}

// Load reads settings from path. A missing file yields defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if s.SearchEngine == "" {
		s.SearchEngine = Engines[0].Name
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Hidden returns the hidden categories as a set.
func (s Settings) Hidden() map[string]bool {
	if len(s.HiddenCategories) == 0 {
		return nil
	}
	set := make(map[string]bool, len(s.HiddenCategories))
	for _, c := range s.HiddenCategories {
		set[c] = true
	}
	return set
}

// ToggleCategory hides a visible category or reveals a hidden one.
func (s *Settings) ToggleCategory(name string) {
	for i, c := range s.HiddenCategories {
		if c == name {
			s.HiddenCategories = append(s.HiddenCategories[:i], s.HiddenCategories[i+1:]...)
			return
		}
	}
	s.HiddenCategories = append(s.HiddenCategories, name)
}

// Engine resolves the configured search engine, defaulting to the first.
func (s Settings) Engine() Engine {
	for _, e := range Engines {
		if e.Name == s.SearchEngine {
			return e
		}
	}
	return Engines[0]
}

// CycleEngine switches to the next search engine in order.
func (s *Settings) CycleEngine() {
	for i, e := range Engines {
		if e.Name == s.SearchEngine {
			s.SearchEngine = Engines[(i+1)%len(Engines)].Name
			return
		}
	}
	s.SearchEngine = Engines[0].Name
}
