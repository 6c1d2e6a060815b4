// Package geo resolves the user's approximate coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location is a named point on the map.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// Provider resolves the current coordinates, or fails. Failure is a
// designed fallback path, not an error state: callers switch to a fixed
// default location.
type Provider interface {
	Locate(ctx context.Context) (Location, error)
}

// DefaultEndpoint is a free IP-geolocation service returning city-level
// coordinates.
const DefaultEndpoint = "http://ip-api.com/json/"

// IPLocator resolves coordinates from the machine's public IP.
type IPLocator struct {
	Endpoint string
	HTTP     *http.Client
}

func NewIPLocator() *IPLocator {
	return &IPLocator{
		Endpoint: DefaultEndpoint,
		HTTP:     &http.Client{Timeout: 5 * time.Second},
	}
}

type ipResponse struct {
	Status string  `json:"status"`
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

func (l *IPLocator) Locate(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := l.HTTP.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation: %s", resp.Status)
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("decoding geolocation: %w", err)
	}
	if body.Status != "success" {
		return Location{}, fmt.Errorf("geolocation status %q", body.Status)
	}
	return Location{Name: body.City, Lat: body.Lat, Lon: body.Lon}, nil
}
