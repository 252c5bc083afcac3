// Package tui implements the terminal UI: the public complaint form and
// lookup surface, and the admin panel behind a session token.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night inspired palette.
var (
	colorPrimary = lipgloss.Color("#7aa2f7") // blue
	colorSuccess = lipgloss.Color("#9ece6a") // green
	colorWarning = lipgloss.Color("#e0af68") // yellow
	colorError   = lipgloss.Color("#f7768e") // red
	colorMuted   = lipgloss.Color("#565f89") // gray
	colorFg      = lipgloss.Color("#c0caf5")
	colorFgDim   = lipgloss.Color("#a9b1d6")
	colorBgLight = lipgloss.Color("#24283b")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	panelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	headerCellStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	selectedRowStyle = lipgloss.NewStyle().
				Background(colorBgLight).
				Foreground(colorFg).
				Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ackStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorSuccess).
			Padding(1, 3)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
)

// statusStyle picks a color for a status value by its comparison form.
func statusStyle(statusUpper string) lipgloss.Style {
	switch statusUpper {
	case "PENDING", "OPEN":
		return lipgloss.NewStyle().Foreground(colorWarning)
	case "IN_PROCESS", "IN PROGRESS":
		return lipgloss.NewStyle().Foreground(colorPrimary)
	case "CLOSED", "RESOLVED":
		return lipgloss.NewStyle().Foreground(colorSuccess)
	default:
		return lipgloss.NewStyle().Foreground(colorFgDim)
	}
}
