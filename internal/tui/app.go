package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lotzi-tosafix/New-page/internal/api"
	"github.com/Lotzi-tosafix/New-page/internal/browser"
	"github.com/Lotzi-tosafix/New-page/internal/config"
	"github.com/Lotzi-tosafix/New-page/internal/news"
	"github.com/Lotzi-tosafix/New-page/internal/refresh"
	"github.com/Lotzi-tosafix/New-page/internal/settings"
	"github.com/Lotzi-tosafix/New-page/internal/update"
	"github.com/Lotzi-tosafix/New-page/internal/zmanim"
)

type mode int

const (
	modeDashboard mode = iota
	modeSearch
	modeSettings
	modeHelp
)

type App struct {
	cfg      *config.Config
	sets     settings.Settings
	setsPath string
	dash     *refresh.Dashboard
	version  string

	mode mode
	now  time.Time

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	// Card data. Nil pointers mean nothing loaded yet, cached or live.
	weather  *api.Weather
	place    string
	times    *zmanim.Times
	currency *api.Currency
	proverb  string

	// News state. items is the flattened view of the active category.
	newsData   news.Categorized
	categories []string
	active     string
	items      []news.Item
	cursor     int

	settingsCursor int
	pending        int
	latestVersion  string
	err            error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg          *config.Config
	Settings     settings.Settings
	SettingsPath string
	Dash         *refresh.Dashboard
	Version      string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search the web..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		cfg:         opts.Cfg,
		sets:        opts.Settings,
		setsPath:    opts.SettingsPath,
		dash:        opts.Dash,
		version:     opts.Version,
		searchInput: ti,
		spinner:     sp,
		now:         time.Now(),
		active:      news.AllCategory,
		place:       opts.Cfg.HomeLocation.Name,
	}
	a.seedFromCache()
	return a
}

// seedFromCache publishes whatever the store holds before the first
// refresh resolves. Rendering never waits on the network: a warm cache
// shows its last values immediately, stale or not, and the running cycle
// overwrites them as results arrive.
func (a *App) seedFromCache() {
	if a.dash == nil {
		return
	}
	snap := a.dash.Cached()
	a.place = snap.Weather.Place.Name
	a.times = snap.Weather.Times
	if snap.Weather.Result.Ok {
		w := snap.Weather.Result.Value
		a.weather = &w
	}
	if snap.Currency.Ok {
		c := snap.Currency.Value
		a.currency = &c
	}
	if snap.Proverb.Ok {
		a.proverb = snap.Proverb.Value.Proverb
	}
	if snap.News.Ok {
		a.newsData = snap.News.Value
		a.recomputeNews()
	}
}

func (a *App) Init() tea.Cmd {
	cmds := a.refreshCmds()
	cmds = append(cmds,
		clockTickCmd(),
		a.refreshTickCmd(),
		a.spinner.Tick,
		checkUpdateCmd(a.version),
	)
	return tea.Batch(cmds...)
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (a *App) refreshTickCmd() tea.Cmd {
	return tea.Tick(a.cfg.TickDuration(), func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// refreshCmds starts one command per data domain so a slow or failing
// domain never blocks the others.
func (a *App) refreshCmds() []tea.Cmd {
	a.pending = 4
	d := a.dash
	return []tea.Cmd{
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return weatherMsg{rep: d.WeatherCycle(ctx)}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return currencyMsg{res: d.CurrencyCycle(ctx)}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return proverbMsg{res: d.ProverbCycle(ctx)}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return newsMsg{res: d.NewsCycle(ctx)}
		},
	}
}

func checkUpdateCmd(version string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return updateMsg{latest: update.Latest(ctx, version)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

// recomputeNews rebuilds the category tabs and the visible item list from
// the raw feed data and the current hidden set, then clamps the cursor.
func (a *App) recomputeNews() {
	hidden := a.sets.Hidden()
	a.categories = news.Categories(a.newsData, hidden)
	a.active = news.Normalize(a.active, a.categories)
	a.items = news.Select(a.newsData, hidden, a.active)
	if a.cursor >= len(a.items) {
		a.cursor = max(0, len(a.items)-1)
	}
}

func (a *App) saveSettings() {
	if err := a.sets.Save(a.setsPath); err != nil {
		a.err = err
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case clockTickMsg:
		a.now = time.Time(msg)
		return a, clockTickCmd()

	case refreshTickMsg:
		cmds := []tea.Cmd{a.refreshTickCmd()}
		if a.pending == 0 {
			cmds = append(cmds, a.refreshCmds()...)
			cmds = append(cmds, a.spinner.Tick)
		}
		return a, tea.Batch(cmds...)

	case weatherMsg:
		a.pending--
		a.place = msg.rep.Place.Name
		a.times = msg.rep.Times
		if msg.rep.Result.Ok {
			w := msg.rep.Result.Value
			a.weather = &w
		} else if msg.rep.Result.Err != nil {
			a.err = msg.rep.Result.Err
		}
		return a, nil

	case currencyMsg:
		a.pending--
		if msg.res.Ok {
			c := msg.res.Value
			a.currency = &c
		} else if msg.res.Err != nil {
			a.err = msg.res.Err
		}
		return a, nil

	case proverbMsg:
		a.pending--
		if msg.res.Ok {
			a.proverb = msg.res.Value.Proverb
		} else if msg.res.Err != nil {
			a.err = msg.res.Err
		}
		return a, nil

	case newsMsg:
		a.pending--
		if msg.res.Ok {
			a.newsData = msg.res.Value
			a.recomputeNews()
		} else if msg.res.Err != nil {
			a.err = msg.res.Err
		}
		return a, nil

	case updateMsg:
		a.latestVersion = msg.latest
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.pending > 0 {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeSettings:
		return a.handleSettingsKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeDashboard
		}
		return a, nil
	}

	// Dashboard mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "h", "left":
		a.moveCategory(-1)
		return a, nil
	case "l", "right":
		a.moveCategory(1)
		return a, nil
	case "o", "enter":
		if len(a.items) > 0 && a.cursor < len(a.items) {
			return a, openBrowserCmd(a.items[a.cursor].Link)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "s":
		a.mode = modeSettings
		a.settingsCursor = 0
		return a, nil
	case "r":
		if a.pending == 0 {
			cmds := a.refreshCmds()
			cmds = append(cmds, a.spinner.Tick)
			return a, tea.Batch(cmds...)
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) moveCategory(delta int) {
	if len(a.categories) == 0 {
		return
	}
	idx := 0
	for i, c := range a.categories {
		if c == a.active {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(a.categories) {
		return
	}
	a.active = a.categories[idx]
	a.cursor = 0
	a.recomputeNews()
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeDashboard
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, nil
	case "tab":
		a.sets.CycleEngine()
		a.saveSettings()
		return a, nil
	case "enter":
		query := strings.TrimSpace(a.searchInput.Value())
		a.mode = modeDashboard
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		if query == "" {
			return a, nil
		}
		return a, openBrowserCmd(a.sets.Engine().SearchURL(query))
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := a.settingsCategories()
	switch msg.String() {
	case "esc", "s", "q":
		a.mode = modeDashboard
		a.saveSettings()
		return a, nil
	case "j", "down":
		if a.settingsCursor < len(cats)-1 {
			a.settingsCursor++
		}
		return a, nil
	case "k", "up":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
		return a, nil
	case " ", "enter":
		if a.settingsCursor < len(cats) {
			a.sets.ToggleCategory(cats[a.settingsCursor])
			a.recomputeNews()
		}
		return a, nil
	case "e":
		a.sets.CycleEngine()
		return a, nil
	}
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newpage")
	}

	if a.mode == modeSettings {
		return a.withBottomBar(a.renderSettings(), "space toggle  e engine  esc close")
	}

	if a.mode == modeHelp {
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}

	// Layout calculations
	headerHeight := 1
	clockHeight := 2
	cardsHeight := cardHeight + 2 // borders
	tabsHeight := 1
	statusHeight := 1
	listHeight := a.height - headerHeight - clockHeight - cardsHeight - tabsHeight - statusHeight - 2
	if listHeight < 3 {
		listHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("newpage")
	headerRight := ""
	if a.latestVersion != "" {
		headerRight = headerDateStyle.Render("update available: v" + a.latestVersion)
	}
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	clock := renderClock(a.now, a.width)
	cards := renderCards(a.weather, a.place, a.times, a.currency, a.proverb, a.width)

	// Search bar replaces the category tabs while typing
	tabs := renderTabs(a.categories, a.active, a.width)
	if a.mode == modeSearch {
		tabs = a.searchInput.View() +
			itemTimeStyle.Render("  ["+a.sets.Engine().Name+"]")
	}

	list := renderNewsList(a.items, a.cursor, listHeight, a.width-2)

	status := renderStatusBar(
		len(a.items),
		a.active,
		a.width,
		a.mode == modeSearch,
		a.pending > 0,
	)
	if a.pending > 0 {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, clock, cards, tabs, list, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newpage")
	dim := itemTimeStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the news list\n" +
		"  h/l, ←/→     Switch category tab\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open story in browser\n" +
		"  r             Refresh all data now\n" +
		"  /             Web search (tab switches engine)\n" +
		"  s             Settings\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := settingsCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
