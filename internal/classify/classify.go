// Package classify buckets feed items into news categories by keyword.
// Only the rss news-source mode uses it; the api mode receives categories
// from the server.
package classify

import (
	"strings"
	"unicode"
)

// General is the catch-all category for items nothing matches.
const General = "General"

// Categories returns the category names in canonical order, General last.
func Categories() []string {
	return []string{"World", "Economy", "Technology", "Science", "Sports", "Culture", General}
}

var categoryKeywords = map[string][]string{
	"World": {
		"election", "president", "minister", "parliament", "government", "war",
		"ceasefire", "treaty", "summit", "border", "embassy", "diplomacy",
		"sanctions", "united nations", "refugee", "protest",
	},
	"Economy": {
		"market", "stocks", "shares", "inflation", "interest rate", "economy",
		"bank", "currency", "shekel", "dollar", "trade", "exports", "budget",
		"tax", "gdp", "startup funding",
	},
	"Technology": {
		"software", "hardware", "startup", "app", "smartphone", "chip",
		"semiconductor", "cyber", "hack", "artificial intelligence", "ai",
		"cloud", "data", "robot", "internet", "social media",
	},
	"Science": {
		"research", "study", "scientists", "space", "nasa", "telescope",
		"vaccine", "climate", "species", "physics", "genome", "archaeology",
		"medicine", "clinical trial",
	},
	"Sports": {
		"match", "league", "goal", "championship", "tournament", "olympic",
		"football", "soccer", "basketball", "tennis", "coach", "transfer",
		"season", "final", "cup",
	},
	"Culture": {
		"film", "movie", "album", "concert", "festival", "museum", "exhibition",
		"novel", "theater", "series", "premiere", "actor", "singer", "recipe",
	},
}

// Classify picks a category from an item's title and summary. Title hits
// count double. Items nothing matches land in General.
func Classify(title, summary string) string {
	titleTokens := tokenize(title)
	summaryTokens := tokenize(summary)
	titleLower := strings.ToLower(title)
	summaryLower := strings.ToLower(summary)

	best := General
	bestScore := 0

	for _, cat := range Categories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(kw, " ") {
				// Multi-word keyword: match in the pre-lowered text.
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(summaryLower, kw) {
					score++
				}
				continue
			}
			for _, t := range titleTokens {
				if t == kw {
					score += 2
				}
			}
			for _, t := range summaryTokens {
				if t == kw {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat
		}
	}
	return best
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
