package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lotzi-tosafix/New-page/internal/cache"
	"github.com/Lotzi-tosafix/New-page/internal/config"
	"github.com/Lotzi-tosafix/New-page/internal/logging"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh all dashboard data once and exit",
	Long: `Run one refresh cycle over every data domain and report what happened.

Fresh cached data is left alone; only missing or stale entries are fetched.
Useful from cron or a shell profile to keep the cache warm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
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

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		snap := newDashboard(cfg, db, log).Cycle(ctx)

		report("weather", snap.Weather.Result.Ok, snap.Weather.Result.Fetched, snap.Weather.Result.Err)
		report("currency", snap.Currency.Ok, snap.Currency.Fetched, snap.Currency.Err)
		report("proverb", snap.Proverb.Ok, snap.Proverb.Fetched, snap.Proverb.Err)
		report("news", snap.News.Ok, snap.News.Fetched, snap.News.Err)
		return nil
	},
}

func report(domain string, ok, fetched bool, err error) {
	switch {
	case err != nil && !ok:
		fmt.Printf("  %-10s failed: %v\n", domain, err)
	case err != nil:
		fmt.Printf("  %-10s failed, kept cached value: %v\n", domain, err)
	case fetched:
		fmt.Printf("  %-10s refreshed\n", domain)
	default:
		fmt.Printf("  %-10s fresh (cached)\n", domain)
	}
}
