// Package badges implements the badge collection screen.
package badges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/rewards"
	"github.com/vidhya/vidhya/internal/router"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/ui/layout"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// LoadFunc fetches every awarded badge.
type LoadFunc func(ctx context.Context) ([]rewards.Badge, error)

type badgesLoadedMsg struct {
	Badges []rewards.Badge
	Err    error
}

// BadgesScreen displays the learner's badges grouped by type.
type BadgesScreen struct {
	load         LoadFunc
	all          []rewards.Badge
	selectedType int // index into rewards.AllBadgeTypes
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen.
func New(load LoadFunc) *BadgesScreen {
	return &BadgesScreen{load: load}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		all, err := s.load(context.Background())
		return badgesLoadedMsg{Badges: all, Err: err}
	}
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.all = msg.Badges
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		types := rewards.AllBadgeTypes()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "q":
			return s, tea.Quit
		case "tab", "right", "l":
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
		case "shift+tab", "left", "h":
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

// SelectedType returns the badge type whose tab is active.
func (s *BadgesScreen) SelectedType() rewards.BadgeType {
	return rewards.AllBadgeTypes()[s.selectedType]
}

func (s *BadgesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d badges\n", len(s.all))))
	b.WriteString("\n")

	var tabs []string
	for i, t := range rewards.AllBadgeTypes() {
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.countByType(t))
		if i == s.selectedType {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, theme.Subtitle.Render(label))
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No badges of this type yet"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))
	for _, badge := range filtered[start:end] {
		line := fmt.Sprintf("  %-10s %-36s %s",
			badge.Rarity.DisplayName(), badge.Reason, badge.AwardedAt.Local().Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.RarityStyle(badge.Rarity).Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}
	return b.String()
}

func (s *BadgesScreen) filtered() []rewards.Badge {
	selected := s.SelectedType()
	var out []rewards.Badge
	for _, badge := range s.all {
		if badge.Type == selected {
			out = append(out, badge)
		}
	}
	return out
}

func (s *BadgesScreen) countByType(t rewards.BadgeType) int {
	n := 0
	for _, badge := range s.all {
		if badge.Type == t {
			n++
		}
	}
	return n
}
