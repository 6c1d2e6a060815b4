package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Lotzi-tosafix/New-page/internal/news"
)

func renderStatusBar(itemCount int, active string, width int, searching bool, refreshing bool) string {
	left := fmt.Sprintf(" %d stories", itemCount)
	if active != news.AllCategory && active != "" {
		left += " · " + active
	}

	right := " / search  s settings  r refresh  ? help  q quit "

	if searching {
		right = " tab engine  esc cancel  enter search "
	}
	if refreshing {
		left += " (refreshing...)"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
