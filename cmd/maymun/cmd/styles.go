package cmd

import "github.com/charmbracelet/lipgloss"

var (
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // bright blue
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // bright red
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // bright green
)

// plainStyles replaces the palette with no-op styles when color is disabled.
func plainStyles() {
	valueStyle = lipgloss.NewStyle()
	errorStyle = lipgloss.NewStyle()
	bannerStyle = lipgloss.NewStyle()
}
