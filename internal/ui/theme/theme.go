package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/rewards"
)

// Color palette: saffron and indigo on a dark slate background.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#F59E0B") // Saffron
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#10B981") // Emerald
	Warning   = lipgloss.Color("#FBBF24") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
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

	Chosen = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(Border)

	Done = lipgloss.NewStyle().
		Foreground(Success)
)

// TimerStyle returns the countdown style for the remaining seconds.
func TimerStyle(remaining int) lipgloss.Style {
	switch {
	case remaining <= 10:
		return Incorrect
	case remaining <= 60:
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Text).Bold(true)
	}
}

// RarityStyle returns the display style for a badge rarity.
func RarityStyle(r rewards.Rarity) lipgloss.Style {
	switch r {
	case rewards.RarityLegendary:
		return lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	case rewards.RarityEpic:
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	case rewards.RarityRare:
		return lipgloss.NewStyle().Foreground(Primary)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
