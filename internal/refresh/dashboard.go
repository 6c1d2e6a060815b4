package refresh

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Lotzi-tosafix/New-page/internal/api"
	"github.com/Lotzi-tosafix/New-page/internal/cache"
	"github.com/Lotzi-tosafix/New-page/internal/geo"
	"github.com/Lotzi-tosafix/New-page/internal/news"
	"github.com/Lotzi-tosafix/New-page/internal/staleness"
	"github.com/Lotzi-tosafix/New-page/internal/zmanim"
)

// DefaultNewsInterval is how long cached news stays fresh.
const DefaultNewsInterval = 10 * time.Minute

// Options configures a Dashboard.
type Options struct {
	Store        cache.Store
	Client       *api.Client
	Locator      geo.Provider // nil means no geolocation, always fall back
	Home         geo.Location // fixed fallback location
	FetchNews    FetchFunc[news.Categorized]
	NewsInterval time.Duration
	Log          *zap.Logger
	Now          Clock
}

// Dashboard drives the refresh cycle of every data domain. Domains are
// independent: a failure in one never touches another's cycle.
type Dashboard struct {
	store   cache.Store
	client  *api.Client
	locator geo.Provider
	home    geo.Location
	log     *zap.Logger
	now     Clock

	hourly   staleness.Policy
	currency Refresher[api.Currency]
	proverb  Refresher[api.Proverb]
	news     Refresher[news.Categorized]
}

func NewDashboard(opts Options) *Dashboard {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.NewsInterval <= 0 {
		opts.NewsInterval = DefaultNewsInterval
	}
	fetchNews := opts.FetchNews
	if fetchNews == nil {
		fetchNews = opts.Client.News
	}

	d := &Dashboard{
		store:   opts.Store,
		client:  opts.Client,
		locator: opts.Locator,
		home:    opts.Home,
		log:     opts.Log,
		now:     opts.Now,
		hourly:  staleness.HourlyBoundary(),
	}
	d.currency = Refresher[api.Currency]{
		Key:    cache.KeyCurrency,
		Store:  opts.Store,
		Policy: staleness.HourlyBoundary(),
		Fetch:  opts.Client.Currency,
		Now:    opts.Now,
	}
	d.proverb = Refresher[api.Proverb]{
		Key:    cache.KeyProverb,
		Store:  opts.Store,
		Policy: staleness.CalendarDay(),
		Fetch:  opts.Client.Proverb,
		Now:    opts.Now,
	}
	d.news = Refresher[news.Categorized]{
		Key:    cache.KeyNews,
		Store:  opts.Store,
		Policy: staleness.Interval(opts.NewsInterval),
		Fetch:  fetchNews,
		Now:    opts.Now,
	}
	return d
}

// WeatherReport is the weather cycle's output: the weather result plus the
// position and day times it was computed for. Times is nil when the
// computation failed this cycle.
type WeatherReport struct {
	Result   Result[api.Weather]
	Place    geo.Location
	Fallback bool
	Times    *zmanim.Times
}

// WeatherCycle resolves a position, computes the day times for it and runs
// the weather refresh. Position resolution happens every cycle even when
// the cached weather is fresh: the day times depend on the current instant
// regardless of the weather's own staleness. The weather fetch and the
// times computation always use the same position, so the two never
// disagree about "where".
func (d *Dashboard) WeatherCycle(ctx context.Context) WeatherReport {
	rep := WeatherReport{Place: d.home, Fallback: true}
	if d.locator != nil {
		loc, err := d.locator.Locate(ctx)
		if err != nil {
			d.log.Info("geolocation unavailable, using home location",
				zap.String("home", d.home.Name), zap.Error(err))
		} else {
			rep.Place = loc
			rep.Fallback = false
		}
	}

	if t, err := zmanim.Compute(d.clock(), rep.Place.Lat, rep.Place.Lon); err != nil {
		d.log.Warn("day times computation failed", zap.Error(err))
	} else {
		rep.Times = &t
	}

	place := rep.Place
	fallback := rep.Fallback
	r := Refresher[api.Weather]{
		Key:    cache.KeyWeather,
		Store:  d.store,
		Policy: d.hourly,
		Now:    d.now,
		Fetch: func(ctx context.Context) (api.Weather, error) {
			if fallback {
				return d.client.WeatherByName(ctx, place.Name)
			}
			return d.client.Weather(ctx, place.Lat, place.Lon)
		},
	}
	rep.Result = r.Cycle(ctx)
	d.logResult(cache.KeyWeather, rep.Result.Fetched, rep.Result.Err)
	return rep
}

func (d *Dashboard) CurrencyCycle(ctx context.Context) Result[api.Currency] {
	res := d.currency.Cycle(ctx)
	d.logResult(cache.KeyCurrency, res.Fetched, res.Err)
	return res
}

func (d *Dashboard) ProverbCycle(ctx context.Context) Result[api.Proverb] {
	res := d.proverb.Cycle(ctx)
	d.logResult(cache.KeyProverb, res.Fetched, res.Err)
	return res
}

func (d *Dashboard) NewsCycle(ctx context.Context) Result[news.Categorized] {
	res := d.news.Cycle(ctx)
	d.logResult(cache.KeyNews, res.Fetched, res.Err)
	return res
}

// Cached returns whatever the store already holds, without fetching or
// consulting staleness: an old value beats a blank screen until the first
// cycle replaces it. Day times are computed for the home location since no
// position has been resolved yet.
func (d *Dashboard) Cached() Snapshot {
	var snap Snapshot
	snap.Weather.Place = d.home
	snap.Weather.Fallback = true
	if t, err := zmanim.Compute(d.clock(), d.home.Lat, d.home.Lon); err == nil {
		snap.Weather.Times = &t
	}

	weather := Refresher[api.Weather]{Key: cache.KeyWeather, Store: d.store}
	if v, ok := weather.Cached(); ok {
		snap.Weather.Result = Result[api.Weather]{Value: v, Ok: true}
	}
	if v, ok := d.currency.Cached(); ok {
		snap.Currency = Result[api.Currency]{Value: v, Ok: true}
	}
	if v, ok := d.proverb.Cached(); ok {
		snap.Proverb = Result[api.Proverb]{Value: v, Ok: true}
	}
	if v, ok := d.news.Cached(); ok {
		snap.News = Result[news.Categorized]{Value: v, Ok: true}
	}
	return snap
}

// Snapshot is everything one full cycle produced.
type Snapshot struct {
	Weather  WeatherReport
	Currency Result[api.Currency]
	Proverb  Result[api.Proverb]
	News     Result[news.Categorized]
}

// Cycle runs every domain concurrently and waits for all of them. A slow
// domain delays only the snapshot, not the other fetches.
func (d *Dashboard) Cycle(ctx context.Context) Snapshot {
	var (
		snap Snapshot
		wg   sync.WaitGroup
	)
	wg.Add(4)
	go func() { defer wg.Done(); snap.Weather = d.WeatherCycle(ctx) }()
	go func() { defer wg.Done(); snap.Currency = d.CurrencyCycle(ctx) }()
	go func() { defer wg.Done(); snap.Proverb = d.ProverbCycle(ctx) }()
	go func() { defer wg.Done(); snap.News = d.NewsCycle(ctx) }()
	wg.Wait()
	return snap
}

func (d *Dashboard) logResult(domain string, fetched bool, err error) {
	switch {
	case err != nil:
		d.log.Warn("refresh failed, keeping last good value",
			zap.String("domain", domain), zap.Error(err))
	case fetched:
		d.log.Debug("refreshed", zap.String("domain", domain))
	}
}

func (d *Dashboard) clock() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}
