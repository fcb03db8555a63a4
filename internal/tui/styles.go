package tui

import "github.com/charmbracelet/lipgloss"

// theme is one colour set of the UI; the Me tab switches between dark and light
type theme struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	selected lipgloss.Style
	tabOn    lipgloss.Style
	tabOff   lipgloss.Style
	accent   lipgloss.Style
	lyricOn  lipgloss.Style
	lyricOff lipgloss.Style
	mini     lipgloss.Style
	errText  lipgloss.Style
}

var (
	darkTheme = theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("55")),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("93")).Padding(0, 1),
		tabOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("171")),
		lyricOn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		lyricOff: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		mini:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("93")).Padding(0, 1),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	lightTheme = theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("189")),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("92")).Padding(0, 1),
		tabOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("92")),
		lyricOn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")),
		lyricOff: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		mini:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("92")).Padding(0, 1),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
)
