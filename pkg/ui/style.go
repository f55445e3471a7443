package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#8B5CF6")
	accentColor  = lipgloss.Color("#34D399")
	errorColor   = lipgloss.Color("#F87171")

	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")
	bgLight  = lipgloss.Color("#334155")

	textPrimary = lipgloss.Color("#F8FAFC")
	textMuted   = lipgloss.Color("#94A3B8")
)

var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	errorPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textMuted).
			Padding(0, 1)

	cleanBadgeStyle = lipgloss.NewStyle().
			Background(accentColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1)

	errorBadgeStyle = lipgloss.NewStyle().
			Background(errorColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 1)

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)
