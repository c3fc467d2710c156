package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reposearch/internal/render"
)

// Theme is a named color set. Colors are hex strings.
type Theme struct {
	Name string

	Background string // behind everything
	Surface    string // title bar

	SelectionBg   string
	SelectionText string

	Border      string // search box, idle
	BorderFocus string // search box, focused

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles are the chrome styles built from a theme. Result and overlay text
// is styled by the renderer through Palette.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	Selected lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
}

func (t Theme) fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func (t Theme) inputBorder(c string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(c))
}

// Styles builds the chrome styles.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       t.fg(t.Text),
		MutedText:  t.fg(t.Muted),
		FaintText:  t.fg(t.Faint),
		AccentText: t.fg(t.Accent),
		DangerText: t.fg(t.Danger).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Input:        t.inputBorder(t.Border),
		InputFocused: t.inputBorder(t.BorderFocus),
	}
}

// Palette maps the theme onto the styles the terminal renderer applies.
func (t Theme) Palette() render.Palette {
	return render.Palette{
		Heading:  t.fg(t.Text).Bold(true),
		Emphasis: t.fg(t.Accent).Bold(true).Italic(true),
		Column:   t.fg(t.Faint).Underline(true),
		Index:    t.fg(t.Muted),
		Name:     t.fg(t.Info),
		Owner:    t.fg(t.Text),
		Label:    t.fg(t.Muted),
		Value:    t.fg(t.Text).Bold(true),
		Link:     t.fg(t.Success).Underline(true),
	}
}

// themeOrder is the cycle order for the theme key. The first entry is the
// fallback for unknown names.
var themeOrder = []Theme{
	// https://github.com/EdenEast/nightfox.nvim
	{
		Name:          "Nightfox",
		Background:    "#131a24",
		Surface:       "#192330",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",
		Border:        "#39506d",
		BorderFocus:   "#719cd6",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Success:       "#81b29a",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		Info:          "#63cdcf",
	},
	// https://github.com/rebelot/kanagawa.nvim
	{
		Name:          "Kanagawa",
		Background:    "#16161D",
		Surface:       "#1F1F28",
		SelectionBg:   "#2D4F67",
		SelectionText: "#DCD7BA",
		Border:        "#54546D",
		BorderFocus:   "#7E9CD8",
		Text:          "#DCD7BA",
		Muted:         "#C8C093",
		Faint:         "#727169",
		Accent:        "#7E9CD8",
		Success:       "#98BB6C",
		Warning:       "#E6C384",
		Danger:        "#E46876",
		Info:          "#7FB4CA",
	},
	// Tailwind slate and sky
	{
		Name:          "Slate",
		Background:    "#020617",
		Surface:       "#0f172a",
		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",
		Border:        "#334155",
		BorderFocus:   "#38bdf8",
		Text:          "#f1f5f9",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#22c55e",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		Info:          "#06b6d4",
	},
}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range themeOrder {
		if t.Name == name {
			return t
		}
	}
	return themeOrder[0]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, t := range themeOrder {
		if t.Name == current {
			return themeOrder[(i+1)%len(themeOrder)].Name
		}
	}
	return themeOrder[0].Name
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themeOrder))
	for i, t := range themeOrder {
		names[i] = t.Name
	}
	return names
}
