package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

func renderClock(now time.Time, width int) string {
	face := clockStyle.Render(now.Format("15:04:05"))
	date := clockDateStyle.Render(now.Format("Monday, January 2 2006"))
	block := lipgloss.JoinVertical(lipgloss.Center, face, date)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
