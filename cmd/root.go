package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lotzi-tosafix/New-page/internal/api"
	"github.com/Lotzi-tosafix/New-page/internal/cache"
	"github.com/Lotzi-tosafix/New-page/internal/config"
	"github.com/Lotzi-tosafix/New-page/internal/feed"
	"github.com/Lotzi-tosafix/New-page/internal/geo"
	"github.com/Lotzi-tosafix/New-page/internal/logging"
	"github.com/Lotzi-tosafix/New-page/internal/news"
	"github.com/Lotzi-tosafix/New-page/internal/refresh"
	"github.com/Lotzi-tosafix/New-page/internal/settings"
	"github.com/Lotzi-tosafix/New-page/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "newpage",
	Short: "Terminal start page",
	Long:  "newpage is a personal start page for the terminal: clock, weather, day times, currency rates, a daily proverb and categorized news, all cached locally.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(cacheCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newpage %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sets, err := settings.Load(config.SettingsPath())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	log, err := logging.Open(config.LogPath())
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	db, err := cache.Open(config.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	return tui.Run(tui.RunOpts{
		Cfg:          cfg,
		Settings:     sets,
		SettingsPath: config.SettingsPath(),
		Dash:         newDashboard(cfg, db, log),
		Version:      version,
	})
}

// newDashboard wires the refresh orchestrator from config: API client,
// optional IP geolocation and the configured news source.
func newDashboard(cfg *config.Config, store cache.Store, log *zap.Logger) *refresh.Dashboard {
	client := api.New(cfg.APIBaseURL, cfg.NewsURL)

	var locator geo.Provider
	if cfg.Geolocate {
		locator = geo.NewIPLocator()
	}

	var fetchNews refresh.FetchFunc[news.Categorized]
	if cfg.NewsSource == "rss" {
		feeds := cfg.EnabledFeeds()
		fetchNews = func(ctx context.Context) (news.Categorized, error) {
			data, errs := feed.FetchAll(ctx, feeds)
			for _, e := range errs {
				log.Warn("feed fetch failed", zap.Error(e))
			}
			if len(data) == 0 && len(errs) > 0 {
				return nil, errs[0]
			}
			return data, nil
		}
	}

	return refresh.NewDashboard(refresh.Options{
		Store:   store,
		Client:  client,
		Locator: locator,
		Home: geo.Location{
			Name: cfg.HomeLocation.Name,
			Lat:  cfg.HomeLocation.Lat,
			Lon:  cfg.HomeLocation.Lon,
		},
		FetchNews:    fetchNews,
		NewsInterval: cfg.NewsIntervalDuration(),
		Log:          log,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
