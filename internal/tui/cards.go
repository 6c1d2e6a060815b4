package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Lotzi-tosafix/New-page/internal/api"
	"github.com/Lotzi-tosafix/New-page/internal/zmanim"
)

const cardHeight = 9

// conditionLabels maps the provider's weather descriptions to the short
// labels shown on the card.
var conditionLabels = map[string]string{
	"clear sky":            "Clear",
	"few clouds":           "Few clouds",
	"scattered clouds":     "Partly cloudy",
	"broken clouds":        "Mostly cloudy",
	"overcast clouds":      "Overcast",
	"shower rain":          "Showers",
	"light rain":           "Light rain",
	"moderate rain":        "Rain",
	"heavy intensity rain": "Heavy rain",
	"rain":                 "Rain",
	"drizzle":              "Drizzle",
	"thunderstorm":         "Thunderstorm",
	"light snow":           "Light snow",
	"snow":                 "Snow",
	"mist":                 "Mist",
	"fog":                  "Fog",
	"haze":                 "Haze",
	"smoke":                "Smoke",
	"dust":                 "Dust",
	"sand":                 "Sand",
}

func describeWeather(desc string) string {
	if label, ok := conditionLabels[strings.ToLower(desc)]; ok {
		return label
	}
	return desc
}

func card(width int, lines ...string) string {
	return cardStyle.Width(width).Height(cardHeight).Render(strings.Join(lines, "\n"))
}

func renderWeatherCard(w *api.Weather, place string, width int) string {
	title := cardTitleStyle.Render("Weather")
	if w == nil {
		return card(width, title, "", cardLabelStyle.Render("loading..."))
	}

	name := w.Name
	if name == "" {
		name = place
	}
	lines := []string{
		title,
		"",
		cardLabelStyle.Render(name),
		cardBigStyle.Render(fmt.Sprintf("%d°C", int(math.Round(w.Main.Temp)))),
		cardLabelStyle.Render(describeWeather(w.Condition())),
	}
	if w.Main.Humidity > 0 {
		lines = append(lines, cardLabelStyle.Render(fmt.Sprintf("humidity %d%%", w.Main.Humidity)))
	}
	return card(width, lines...)
}

func fmtClock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

func renderTimesCard(z *zmanim.Times, width int) string {
	title := cardTitleStyle.Render("Day Times")
	if z == nil {
		return card(width, title, "", cardLabelStyle.Render("unavailable"))
	}

	row := func(label string, t time.Time) string {
		return cardLabelStyle.Render(label+" ") + cardValueStyle.Render(fmtClock(t))
	}
	left := []string{
		row("dawn   ", z.Alot),
		row("sunrise", z.Sunrise),
		row("shma   ", z.ShmaGRA),
		row("tfilla ", z.TfillaGRA),
	}
	right := []string{
		row("midday ", z.Chatzot),
		row("sunset ", z.Sunset),
		row("night  ", z.Tzeit),
	}
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"),
		"  ",
		strings.Join(right, "\n"),
	)
	lines := []string{title, "", cols}
	if z.DafYomi != "" {
		lines = append(lines, "", cardLabelStyle.Render("daf yomi ")+cardValueStyle.Render(z.DafYomi))
	}
	return card(width, lines...)
}

// currencyRows lists the rates shown on the card: code, label and the
// amount converted. JPY is quoted per 100 yen.
var currencyRows = []struct {
	code   string
	label  string
	amount float64
}{
	{"USD", "USD $", 1},
	{"EUR", "EUR €", 1},
	{"GBP", "GBP £", 1},
	{"JPY", "JPY (100)", 100},
}

func renderCurrencyCard(c *api.Currency, width int) string {
	title := cardTitleStyle.Render("Currency")
	if c == nil {
		return card(width, title, "", cardLabelStyle.Render("loading..."))
	}

	lines := []string{title, ""}
	for _, r := range currencyRows {
		rate := c.RateToILS(r.code, r.amount)
		if rate == 0 {
			continue
		}
		lines = append(lines,
			cardLabelStyle.Render(fmt.Sprintf("%-9s", r.label))+
				cardValueStyle.Render(fmt.Sprintf("%6.2f ₪", rate)))
	}
	return card(width, lines...)
}

func renderProverbCard(text string, width int) string {
	title := cardTitleStyle.Render("Daily Proverb")
	if text == "" {
		return card(width, title, "", cardLabelStyle.Render("loading..."))
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	body := proverbStyle.Width(inner).Render("“" + text + "”")
	return card(width, title, "", body)
}

func renderCards(w *api.Weather, place string, z *zmanim.Times, c *api.Currency, proverb string, width int) string {
	cardW := width/4 - 2
	if cardW < 18 {
		cardW = 18
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderWeatherCard(w, place, cardW),
		renderTimesCard(z, cardW),
		renderCurrencyCard(c, cardW),
		renderProverbCard(proverb, cardW),
	)
}
