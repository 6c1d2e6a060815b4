package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// settingsCategories lists every category the feed knows, hidden ones
// included, so they can be toggled back on.
func (a *App) settingsCategories() []string {
	cats := make([]string, 0, len(a.newsData))
	for c := range a.newsData {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

func (a *App) renderSettings() string {
	hidden := a.sets.Hidden()
	cats := a.settingsCategories()

	var lines []string
	lines = append(lines, settingsTitleStyle.Render("Settings"))

	lines = append(lines, cardLabelStyle.Render("Search engine")+"  "+
		cardValueStyle.Render(a.sets.Engine().Name)+
		itemTimeStyle.Render("  (e to change)"))
	lines = append(lines, "")
	lines = append(lines, cardLabelStyle.Render("Categories  (space to show/hide)"))

	if len(cats) == 0 {
		lines = append(lines, itemTimeStyle.Render("  no categories yet"))
	}
	for i, cat := range cats {
		box := "[x]"
		if hidden[cat] {
			box = "[ ]"
		}
		row := "  " + box + " " + cat
		if i == a.settingsCursor {
			row = itemSelectedStyle.Render("> " + box + " " + cat)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	lines = append(lines, itemTimeStyle.Render("esc close"))

	box := settingsCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
