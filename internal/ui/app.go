package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/five82/reposearch/internal/cache"
	"github.com/five82/reposearch/internal/controller"
	"github.com/five82/reposearch/internal/github"
	"github.com/five82/reposearch/internal/prefs"
	"github.com/five82/reposearch/internal/render"
)

// focusArea is the part of the screen receiving keys.
type focusArea int

const (
	focusSearch focusArea = iota
	focusResults
)

const defaultThemeName = "Nightfox"

// Options configures the UI.
type Options struct {
	Context    context.Context
	Searcher   github.Searcher
	Cache      *cache.Cache
	Logger     zerolog.Logger
	ThemeName  string
	PrefsPath  string
	ShowErrors bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx    context.Context
	ctrl   *controller.Controller
	screen *screen
	term   *render.Terminal
	log    zerolog.Logger

	// Configuration
	prefsPath  string
	showErrors bool

	// UI state
	theme    Theme
	keys     keyMap
	input    textinput.Model
	spinner  spinner.Model
	help     help.Model
	width    int
	height   int
	ready    bool
	focus    focusArea
	showHelp bool

	// Result list state
	cursor int
	offset int

	// status holds the last search error; rendered only with showErrors.
	status string
}

// New creates a new Bubble Tea model.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	term := render.NewTerminal(theme.Palette())
	scr := &screen{}

	ctrl, err := controller.New(controller.Deps{
		Searcher: opts.Searcher,
		Cache:    opts.Cache,
		Renderer: term,
		Surface:  scr,
		Logger:   opts.Logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("build controller: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Search repositories"
	input.Prompt = "› "
	input.CharLimit = 0
	input.Focus()

	m := Model{
		ctx:        ctx,
		ctrl:       ctrl,
		screen:     scr,
		term:       term,
		log:        opts.Logger,
		prefsPath:  prefsPath,
		showErrors: opts.ShowErrors,
		theme:      theme,
		keys:       DefaultKeyMap(),
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		focus:      focusSearch,
	}
	m.applyTheme()
	return m, nil
}

// Controller exposes the session controller.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-2)
		m.help.Width = msg.Width
		m.term.SetNameWidth(min(max(msg.Width/2, minNameWidth), maxNameWidth))
		m.ctrl.Refresh()
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		// The tick chain ends once the loader is hidden.
		if !m.screen.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.ctrl.OnSearchComplete(msg.query, msg.resp)
		m.clampCursor()
		return m, nil

	case searchFailedMsg:
		m.ctrl.OnSearchFailed(msg.query, msg.err)
		if m.showErrors && msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.screen.overlayActive {
		return m.renderModal(m.screen.overlay)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The list behind the overlay is locked; only dismissal gets through.
	if m.screen.overlayActive {
		if key.Matches(msg, m.keys.Dismiss) {
			m.ctrl.DismissOverlay()
		}
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value())
	case key.Matches(msg, m.keys.LeaveSearch), key.Matches(msg, m.keys.Tab):
		m.focusResults()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSearch), key.Matches(msg, m.keys.Tab):
		return m, m.focusSearch()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Select):
		m.ctrl.SelectRecord(m.cursor)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.resultCount())
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.resultCount())
	}
	return m, nil
}

// handleMouse maps clicks onto rows and treats a left click anywhere on the
// overlay as a dismissal. The wheel does nothing while an overlay is open.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.showHelp || m.screen.overlayActive {
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.showHelp {
			m.showHelp = false
		} else {
			m.ctrl.DismissOverlay()
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		if idx, ok := m.rowAt(msg.Y); ok {
			m.cursor = idx
			m.focusResults()
			m.ctrl.SelectRecord(idx)
			return m, nil
		}
		if msg.Y == listTop-2 {
			return m, m.focusSearch()
		}
	}
	return m, nil
}

// submit hands the query to the controller and, on a cache miss, starts the
// fetch.
func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	m.status = ""
	m.cursor, m.offset = 0, 0
	m.focusResults()

	if !m.ctrl.SubmitQuery(query) {
		return m, nil
	}
	m.log.Debug().Str("query", query).Msg("fetching")
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(query))
}

func (m *Model) focusResults() {
	m.focus = focusResults
	m.input.Blur()
}

func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	return m.input.Focus()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.ctrl.Refresh()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs")
		}
	}
}

// applyTheme pushes the current theme into the renderer and components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.term.SetPalette(m.theme.Palette())

	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.AccentText

	m.help.Styles.ShortKey = styles.MutedText
	m.help.Styles.ShortDesc = styles.FaintText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.MutedText
	m.help.Styles.FullDesc = styles.FaintText
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m Model) resultCount() int {
	return m.ctrl.State().Current.Len()
}

// visibleRows is how many result rows fit below the list heading.
func (m Model) visibleRows() int {
	return max(1, m.height-listTop-render.ListHeaderLines-footerLines)
}

func (m *Model) moveCursor(delta int) {
	if m.screen.scrollLocked || !m.screen.resultsShown {
		return
	}
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.resultCount()
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

// rowAt maps a screen row to a record index.
func (m Model) rowAt(y int) (int, bool) {
	if !m.screen.resultsShown {
		return 0, false
	}
	i := y - listTop - render.ListHeaderLines
	if i < 0 || i >= m.visibleRows() {
		return 0, false
	}
	idx := m.offset + i
	if idx >= m.resultCount() {
		return 0, false
	}
	return idx, true
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var b strings.Builder

	// Title bar
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	// Search box and its underline
	inputStyle := styles.Input
	if m.focus == focusSearch {
		inputStyle = styles.InputFocused
	}
	b.WriteString(inputStyle.Width(m.width).Render(m.input.View()))
	b.WriteString("\n")

	// Result area, padded so the footer stays at the bottom
	body := m.renderResults()
	bodyHeight := max(m.height-listTop-footerLines, 0)
	for len(body) < bodyHeight {
		body = append(body, "")
	}
	b.WriteString(strings.Join(body[:bodyHeight], "\n"))
	if bodyHeight > 0 {
		b.WriteString("\n")
	}

	// Footer: status, then key hints
	if m.showErrors && m.status != "" {
		b.WriteString(styles.DangerText.Render(ansi.Truncate(m.status, m.width, "…")))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := bg.Render("reposearch", styles.AccentText.Bold(true))
	meta := m.theme.Name
	if m.screen.resultsShown {
		meta = fmt.Sprintf("%d results · %s", m.resultCount(), meta)
	}
	return bg.FillLine(title+bg.Space()+bg.Space()+bg.Render(meta, styles.MutedText), m.width)
}

// renderResults returns the lines of the result area.
func (m Model) renderResults() []string {
	styles := m.theme.Styles()

	switch {
	case m.screen.loading:
		return []string{m.spinner.View() + " " + styles.MutedText.Render("Searching…")}

	case m.screen.resultsShown:
		lines := strings.Split(m.screen.results, "\n")
		head := min(len(lines), render.ListHeaderLines)
		out := append([]string(nil), lines[:head]...)
		rows := lines[head:]
		end := min(len(rows), m.offset+m.visibleRows())
		for i := m.offset; i < end; i++ {
			line := rows[i]
			if i == m.cursor {
				plain := ansi.Strip(line)
				if pad := m.width - ansi.StringWidth(plain); pad > 0 {
					plain += strings.Repeat(" ", pad)
				}
				line = styles.Selected.Render(plain)
			}
			out = append(out, line)
		}
		return out

	default:
		return []string{styles.FaintText.Render("Type a query and press enter.")}
	}
}

// Messages

type searchDoneMsg struct {
	query string
	resp  *github.SearchResponse
}

type searchFailedMsg struct {
	query string
	err   error
}

// Commands

// fetchCmd runs the search off the event loop. The outcome comes back as a
// message so the controller only ever runs on the loop.
func (m Model) fetchCmd(query string) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		resp, err := ctrl.Fetch(ctx, query)
		if err != nil {
			return searchFailedMsg{query: query, err: err}
		}
		return searchDoneMsg{query: query, resp: resp}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
