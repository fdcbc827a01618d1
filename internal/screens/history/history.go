// Package history implements the quiz attempt history screen.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/router"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/store"
	"github.com/vidhya/vidhya/internal/ui/layout"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// LoadFunc fetches attempts, newest first.
type LoadFunc func(ctx context.Context) ([]store.AttemptRecord, error)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen displays past quiz attempts with per-question results.
type HistoryScreen struct {
	load     LoadFunc
	attempts []store.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(load LoadFunc) *HistoryScreen {
	return &HistoryScreen{
		load:     load,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.load(context.Background())
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Quiz History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "q":
			return s, tea.Quit
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quiz attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		verdict := "failed"
		if a.Passed {
			verdict = "passed"
		}
		line := fmt.Sprintf("%s%s  %-24s %3d%%  %s  %d/%d correct  %d:%02d",
			prefix, a.Timestamp.Local().Format("Jan 02, 2006"), a.TestTitle,
			a.Percentage, verdict, a.CorrectCount, a.TotalQuestions,
			a.TimeTakenSecs/60, a.TimeTakenSecs%60)
		if a.SubmittedBy == "timeout" {
			line += "  (timed out)"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(a, width))
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderAnswers(a store.AttemptRecord, width int) string {
	var b strings.Builder
	if len(a.Answers) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("    No answers recorded")))
		b.WriteString("\n")
		return b.String()
	}
	for _, ans := range a.Answers {
		var line string
		switch {
		case ans.Selected < 0:
			line = theme.Hint.Render(fmt.Sprintf("    Q%d  unanswered", ans.Index+1))
		case ans.Correct:
			line = theme.Correct.Render(fmt.Sprintf("    Q%d  ✓ option %d", ans.Index+1, ans.Selected+1))
		default:
			line = theme.Incorrect.Render(fmt.Sprintf("    Q%d  ✗ option %d", ans.Index+1, ans.Selected+1))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}
