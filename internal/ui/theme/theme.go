package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, loosely after traditional Japanese dye colors
var (
	Primary   = lipgloss.Color("#E85D75") // Nadeshiko pink
	Secondary = lipgloss.Color("#5B8DB8") // Indigo blue
	Accent    = lipgloss.Color("#E8A33D") // Kuchiba gold
	Success   = lipgloss.Color("#6BA368") // Matcha green
	Error     = lipgloss.Color("#C1443C") // Vermilion
	Text      = lipgloss.Color("#F5F1E8") // Warm white
	TextDim   = lipgloss.Color("#8C8577") // Ash
	BgDark    = lipgloss.Color("#1A1714") // Sumi ink
	BgCard    = lipgloss.Color("#2B2620") // Lacquer
	Border    = lipgloss.Color("#4A4338") // Driftwood
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Japanese = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Chat bubbles
var (
	UserBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	TutorBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
