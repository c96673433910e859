package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#2563EB")
	colorSuccess = lipgloss.Color("#22C55E")
	colorWarning = lipgloss.Color("#EAB308")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#374151")
)

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	StyleValue = lipgloss.NewStyle().
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	StyleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(colorError)

	StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	StylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	StyleHelp = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
