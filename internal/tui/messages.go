package tui

import (
	"time"

	"github.com/Lotzi-tosafix/New-page/internal/api"
	"github.com/Lotzi-tosafix/New-page/internal/news"
	"github.com/Lotzi-tosafix/New-page/internal/refresh"
)

// clockTickMsg fires every second to advance the clock display.
type clockTickMsg time.Time

// refreshTickMsg fires on the background refresh cadence.
type refreshTickMsg time.Time

type weatherMsg struct {
	rep refresh.WeatherReport
}

type currencyMsg struct {
	res refresh.Result[api.Currency]
}

type proverbMsg struct {
	res refresh.Result[api.Proverb]
}

type newsMsg struct {
	res refresh.Result[news.Categorized]
}

// updateMsg carries the newer release version, or "" when there is none.
type updateMsg struct {
	latest string
}

type openErrMsg struct {
	err error
}
