package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — impact report palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleDim — muted footer/hint text.
var StyleDim = lipgloss.NewStyle().Foreground(colorGray)
