package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the Bubble Tea program in the alternate screen and blocks
// until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
