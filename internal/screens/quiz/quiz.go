// Package quiz implements the timed quiz screen.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/progress"
	qz "github.com/vidhya/vidhya/internal/quiz"
	"github.com/vidhya/vidhya/internal/router"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/screens/results"
	"github.com/vidhya/vidhya/internal/ui/components"
	"github.com/vidhya/vidhya/internal/ui/layout"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// SubmitFunc receives the score report once the attempt is submitted,
// manually or by the timer. It may be nil.
type SubmitFunc func(ctx context.Context, report qz.ScoreReport) (*progress.AttemptOutcome, error)

// QuizScreen implements screen.Screen for a running quiz session.
type QuizScreen struct {
	session    *qz.Session
	keys       keyMap
	cursor     int
	confirming bool
	onSubmit   SubmitFunc
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a session for test and returns a screen driving it.
func New(test qz.Test, onSubmit SubmitFunc) (*QuizScreen, error) {
	session, err := qz.Start(test)
	if err != nil {
		return nil, err
	}
	return &QuizScreen{
		session:  session,
		keys:     defaultKeyMap(),
		onSubmit: onSubmit,
	}, nil
}

// Session returns the session driven by the screen.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return s.session.Test().Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session.Status() != qz.StatusActive {
		return []layout.KeyHint{{Key: "", Description: "Saving..."}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Choose"},
		{Key: "x", Description: "Clear"},
		{Key: "s", Description: "Submit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case attemptSavedMsg:
		next := results.New(msg.Report, msg.Outcome, msg.Err)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.session.Status() != qz.StatusActive {
		return s, nil
	}
	if err := s.session.Tick(); err != nil {
		return s, nil
	}
	if s.session.Status() == qz.StatusSubmitted {
		s.confirming = false
		return s, s.save()
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.session.Status() != qz.StatusActive {
		return s, nil
	}

	if s.confirming {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.confirming = false
			if _, err := s.session.Submit(); err != nil {
				return s, nil
			}
			return s, s.save()
		case key.Matches(msg, s.keys.Cancel):
			s.confirming = false
		}
		return s, nil
	}

	q := s.session.CurrentQuestion()
	switch {
	case key.Matches(msg, s.keys.Next):
		s.session.Advance(qz.Next)
		s.syncCursor()
	case key.Matches(msg, s.keys.Prev):
		s.session.Advance(qz.Prev)
		s.syncCursor()
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Choose):
		s.session.SelectAnswer(s.cursor)
	case key.Matches(msg, s.keys.Clear):
		s.session.ClearAnswer()
	case key.Matches(msg, s.keys.Submit):
		s.confirming = true
	default:
		if i, ok := optionIndex(msg.String()); ok && i < len(q.Options) {
			s.session.SelectAnswer(i)
			s.cursor = i
		}
	}
	return s, nil
}

// syncCursor places the cursor on the chosen answer of the current
// question, or the first option.
func (s *QuizScreen) syncCursor() {
	s.cursor = 0
	if a, ok := s.session.Answer(s.session.QuestionIndex()); ok {
		s.cursor = a
	}
}

// save hands the report to the submit callback off the update loop.
func (s *QuizScreen) save() tea.Cmd {
	report, err := s.session.Report()
	if err != nil {
		return nil
	}
	onSubmit := s.onSubmit
	return func() tea.Msg {
		if onSubmit == nil {
			return attemptSavedMsg{Report: report}
		}
		outcome, err := onSubmit(context.Background(), report)
		return attemptSavedMsg{Report: report, Outcome: outcome, Err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.session.Status() != qz.StatusActive {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("Submitting..."))
	}

	var b strings.Builder
	test := s.session.Test()
	idx := s.session.QuestionIndex()

	status := fmt.Sprintf("Question %d of %d", idx+1, test.TotalQuestions())
	timer := theme.TimerStyle(s.session.RemainingSeconds()).
		Render("⏱ " + FormatClock(s.session.RemainingSeconds()))
	gap := max(width-4-lipgloss.Width(status)-lipgloss.Width(timer), 1)
	b.WriteString(theme.Label.Render(status) + strings.Repeat(" ", gap) + timer)
	b.WriteString("\n")

	answered := s.session.AnsweredCount()
	pct := answered * 100 / test.TotalQuestions()
	b.WriteString(components.NewProgressBar(fmt.Sprintf("Answered %d", answered), pct, width-4).View())
	b.WriteString("\n\n")

	q := s.session.CurrentQuestion()
	mc := components.NewMultiChoice(q.Prompt, q.Options)
	mc.Cursor = s.cursor
	if a, ok := s.session.Answer(idx); ok {
		mc.Chosen = a
	}
	b.WriteString(mc.View())

	if !layout.IsCompactHeight(height) {
		b.WriteString("\n")
		b.WriteString(s.renderPalette())
	}

	if s.confirming {
		b.WriteString("\n\n")
		b.WriteString(s.renderConfirm())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderPalette shows every question number, marking the current one and
// those already answered.
func (s *QuizScreen) renderPalette() string {
	n := s.session.Test().TotalQuestions()
	cells := make([]string, n)
	for i := range n {
		label := fmt.Sprintf(" %d ", i+1)
		_, answered := s.session.Answer(i)
		switch {
		case i == s.session.QuestionIndex():
			cells[i] = theme.Selected.Reverse(true).Render(label)
		case answered:
			cells[i] = theme.Done.Render(label)
		default:
			cells[i] = theme.Subtitle.Render(label)
		}
	}
	return strings.Join(cells, "")
}

func (s *QuizScreen) renderConfirm() string {
	unanswered := s.session.Test().TotalQuestions() - s.session.AnsweredCount()
	msg := "Submit your answers?"
	if unanswered > 0 {
		msg = fmt.Sprintf("Submit with %d unanswered question(s)?", unanswered)
	}
	return theme.Card.Render(theme.Body.Bold(true).Render(msg) + "\n" + theme.Hint.Render("y to submit, n to keep going"))
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
