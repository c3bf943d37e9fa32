package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorDisabled lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorToday    lipgloss.Color = "#f9e2af"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	weekdayStyle = lipgloss.NewStyle().Foreground(colorMuted)

	dayStyle      = lipgloss.NewStyle().Foreground(colorText)
	outsideStyle  = lipgloss.NewStyle().Foreground(colorDisabled).Faint(true)
	disabledStyle = lipgloss.NewStyle().Foreground(colorDisabled).Strikethrough(true)
	todayStyle    = lipgloss.NewStyle().Foreground(colorToday).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true)
	focusStyle    = lipgloss.NewStyle().Reverse(true)

	historyStyle = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
)
