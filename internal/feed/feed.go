// Package feed aggregates RSS sources into a categorized news set. It is
// the local alternative to the hosted news endpoint.
package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Lotzi-tosafix/New-page/internal/classify"
	"github.com/Lotzi-tosafix/New-page/internal/config"
	"github.com/Lotzi-tosafix/New-page/internal/news"
)

// Items older than this are dropped from the start page.
const maxItemAge = 7 * 24 * time.Hour

type Fetcher struct {
	parser *gofeed.Parser
}

func New() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch retrieves one source and converts its items. The returned map
// holds the per-item category (the source's fixed category when set,
// keyword classification otherwise).
func (f *Fetcher) Fetch(ctx context.Context, source config.FeedSource) (news.Categorized, error) {
	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	now := time.Now()
	maxAge := now.Add(-maxItemAge)
	out := make(news.Categorized)
	for _, item := range parsed.Items {
		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}
		if pub.Before(maxAge) {
			continue
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		summary = truncate(stripHTML(summary), 300)

		cat := source.Category
		if cat == "" {
			cat = classify.Classify(item.Title, summary)
		}

		var image string
		if item.Image != nil {
			image = item.Image.URL
		}

		out[cat] = append(out[cat], news.Item{
			Title:     item.Title,
			Link:      item.Link,
			Date:      pub.Format("2006-01-02 15:04"),
			Timestamp: pub.Unix(),
			Summary:   summary,
			Image:     image,
			Source:    news.Source{Name: source.Name},
		})
	}
	return out, nil
}

// FetchAll retrieves every source concurrently and merges the results into
// one categorized set. Per-source failures are collected, not fatal: the
// sources that answered still produce a page.
func FetchAll(ctx context.Context, sources []config.FeedSource) (news.Categorized, []error) {
	var (
		mu     sync.Mutex
		merged = make(news.Categorized)
		errs   []error
		wg     sync.WaitGroup
	)

	fetcher := New()

	for _, src := range sources {
		wg.Add(1)
		go func(s config.FeedSource) {
			defer wg.Done()
			got, err := fetcher.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			for cat, items := range got {
				merged[cat] = append(merged[cat], items...)
			}
		}(src)
	}

	wg.Wait()
	return merged, errs
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
