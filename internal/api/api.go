// Package api talks to the start-page backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Lotzi-tosafix/New-page/internal/news"
)

// Weather is the weather endpoint payload (OpenWeatherMap shape, proxied).
type Weather struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
}

type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Condition returns the primary condition description, if any.
func (w Weather) Condition() string {
	if len(w.Weather) == 0 {
		return ""
	}
	return w.Weather[0].Description
}

// Currency is the currency endpoint payload: USD-based conversion rates.
type Currency struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// RateToILS converts amount units of the given currency code to shekels
// using the USD-based rate table. Returns 0 when either rate is missing.
func (c Currency) RateToILS(code string, amount float64) float64 {
	rateInUSD := c.ConversionRates[code]
	ilsInUSD := c.ConversionRates["ILS"]
	if rateInUSD == 0 || ilsInUSD == 0 {
		return 0
	}
	return (ilsInUSD / rateInUSD) * amount
}

// Proverb is the daily proverb payload.
type Proverb struct {
	Proverb string `json:"proverb"`
}

// Client fetches weather, currency, proverb and news data. Every call is a
// single attempt; retrying is the caller's refresh cycle.
type Client struct {
	baseURL string
	newsURL string
	http    *http.Client
}

func New(baseURL, newsURL string) *Client {
	return &Client{
		baseURL: baseURL,
		newsURL: newsURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Weather fetches current weather for the given coordinates.
func (c *Client) Weather(ctx context.Context, lat, lon float64) (Weather, error) {
	var w Weather
	u := fmt.Sprintf("%s/weather?lat=%g&lon=%g", c.baseURL, lat, lon)
	err := c.getJSON(ctx, u, &w)
	return w, err
}

// WeatherByName fetches current weather for a named location. Used for the
// fallback location when geolocation is unavailable.
func (c *Client) WeatherByName(ctx context.Context, location string) (Weather, error) {
	var w Weather
	u := c.baseURL + "/weather?location=" + url.QueryEscape(location)
	err := c.getJSON(ctx, u, &w)
	return w, err
}

func (c *Client) Currency(ctx context.Context) (Currency, error) {
	var cur Currency
	err := c.getJSON(ctx, c.baseURL+"/currency", &cur)
	return cur, err
}

func (c *Client) Proverb(ctx context.Context) (Proverb, error) {
	var p Proverb
	err := c.getJSON(ctx, c.baseURL+"/proverb", &p)
	return p, err
}

// News fetches the categorized feed. Responses whose status is not "ok"
// are errors and never reach the cache.
func (c *Client) News(ctx context.Context) (news.Categorized, error) {
	var resp news.Response
	if err := c.getJSON(ctx, c.newsURL, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("news status %q", resp.Status)
	}
	return resp.Data, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", rawURL, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", rawURL, err)
	}
	return nil
}
