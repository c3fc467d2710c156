package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/reposearch/internal/github"
)

// ListHeaderLines is the number of lines Terminal.List writes before the
// first row. Row i is always line ListHeaderLines+i.
const ListHeaderLines = 3

const (
	defaultNameWidth = 36
	indexWidth       = 4
	labelWidth       = 13
	dateLayout       = "2006-01-02"
)

// Palette holds the styles Terminal applies. The zero value renders plain
// text.
type Palette struct {
	Heading  lipgloss.Style
	Emphasis lipgloss.Style
	Column   lipgloss.Style
	Index    lipgloss.Style
	Name     lipgloss.Style
	Owner    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Link     lipgloss.Style
}

// Terminal renders lipgloss-styled text for the TUI, one record per line.
type Terminal struct {
	palette   Palette
	nameWidth int
}

// NewTerminal returns a terminal renderer using p.
func NewTerminal(p Palette) *Terminal {
	return &Terminal{palette: p, nameWidth: defaultNameWidth}
}

// SetPalette swaps the styles used by subsequent renders.
func (t *Terminal) SetPalette(p Palette) {
	t.palette = p
}

// SetNameWidth sets the width of the name column. Values below 8 are
// ignored.
func (t *Terminal) SetNameWidth(w int) {
	if w >= 8 {
		t.nameWidth = w
	}
}

// List renders the heading, a column head and one row per record.
func (t *Terminal) List(resp *github.SearchResponse) string {
	p := t.palette
	var query string
	var repos []github.Repository
	if resp != nil {
		query = resp.Query
		repos = resp.Repositories
	}

	var b strings.Builder
	b.WriteString(p.Heading.Render("Search Results for "))
	b.WriteString(p.Emphasis.Render(clean(query)))
	b.WriteString("\n\n")
	b.WriteString(p.Column.Render(pad("#", indexWidth) + pad("Name", t.nameWidth) + "  Owner"))
	for i, repo := range repos {
		b.WriteByte('\n')
		b.WriteString(p.Index.Render(pad(strconv.Itoa(i), indexWidth)))
		b.WriteString(p.Name.Render(pad(fit(clean(repo.Name), t.nameWidth), t.nameWidth)))
		b.WriteString("  ")
		b.WriteString(p.Owner.Render(clean(repo.Owner)))
	}
	return b.String()
}

type detailRow struct {
	label string
	value string
	style lipgloss.Style
}

// Detail renders the repository panel. An empty description leaves the
// value blank. Created and pushed dates follow the link when the record
// carries them.
func (t *Terminal) Detail(repo github.Repository) string {
	p := t.palette
	rows := []detailRow{
		{"Language:", repo.Language, p.Value},
		{"Owner:", repo.Owner, p.Value},
		{"Followers:", strconv.Itoa(repo.Followers), p.Value},
		{"Description:", repo.Description, p.Value},
		{"Link:", repo.URL, p.Link},
	}
	if at := repo.ParsedCreatedAt(); !at.IsZero() {
		rows = append(rows, detailRow{"Created:", at.Format(dateLayout), p.Value})
	}
	if at := repo.ParsedPushedAt(); !at.IsZero() {
		rows = append(rows, detailRow{"Pushed:", at.Format(dateLayout), p.Value})
	}

	var b strings.Builder
	b.WriteString(p.Heading.Render("Repository Details for "))
	b.WriteString(p.Emphasis.Render(clean(repo.Name)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(p.Label.Render(pad(row.label, labelWidth)))
		if v := clean(row.value); v != "" {
			b.WriteString(row.style.Render(v))
		}
	}
	return b.String()
}

// clean strips control characters so interpolated values cannot inject
// escape sequences or break the one-row-per-line layout.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// fit truncates s to width display cells.
func fit(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// pad right-pads s with spaces to width display cells.
func pad(s string, width int) string {
	if n := width - ansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
