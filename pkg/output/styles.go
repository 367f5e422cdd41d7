package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors used by the report renderer
var (
	SuccessColor = lipgloss.Color("2")
	WarningColor = lipgloss.Color("3")
	MutedColor   = lipgloss.Color("8")
	PathColor    = lipgloss.Color("6")
)

// Styles used by the report renderer
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
