package ui

import "github.com/charmbracelet/lipgloss"

// renderModal centers content in a bordered box over a blank screen. Both
// the detail overlay and the help screen use it.
func (m Model) renderModal(content string) string {
	width := modalWidth
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
