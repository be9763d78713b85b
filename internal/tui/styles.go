package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#E07A5F")
	colorText   = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
	colorDone   = lipgloss.Color("#10B981")
	colorError  = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	filterStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true).
				Align(lipgloss.Center)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Bold(true).
			Padding(0, 2)

	completedStyle = lipgloss.NewStyle().
			Foreground(colorDone)
)
