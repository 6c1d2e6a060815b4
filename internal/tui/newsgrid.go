package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Lotzi-tosafix/New-page/internal/news"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderTabs(categories []string, active string, width int) string {
	if len(categories) == 0 {
		return ""
	}
	var tabs []string
	for _, cat := range categories {
		if cat == active {
			tabs = append(tabs, tabActiveStyle.Render(cat))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(cat))
		}
	}
	row := strings.Join(tabs, " ")
	if lipgloss.Width(row) > width {
		row = truncateStr(row, width)
	}
	return row
}

func renderNewsItem(item news.Item, selected bool, width int) string {
	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(item.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(item.Title, width-4))
	}

	when := relativeTime(time.Unix(item.Timestamp, 0))
	meta := "  " + itemSourceStyle.Render(item.Source.Name) + " " + itemTimeStyle.Render("· "+when)
	if item.Summary != "" {
		meta += " " + itemTimeStyle.Render("· "+truncateStr(item.Summary, width-lipgloss.Width(meta)-4))
	}
	return title + "\n" + meta
}

func renderNewsList(items []news.Item, cursor, height, width int) string {
	if len(items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			cardLabelStyle.Render("No news to show"))
	}

	// Each item is 2 lines + 1 blank line.
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, renderNewsItem(items[i], i == cursor, width))
	}
	return strings.Join(rows, "\n\n")
}
