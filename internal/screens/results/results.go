// Package results shows the outcome of a submitted quiz.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/progress"
	qz "github.com/vidhya/vidhya/internal/quiz"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/ui/components"
	"github.com/vidhya/vidhya/internal/ui/layout"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// ResultsScreen implements screen.Screen for a scored attempt.
type ResultsScreen struct {
	report  qz.ScoreReport
	outcome *progress.AttemptOutcome
	saveErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. outcome may be nil when nothing was saved.
func New(report qz.ScoreReport, outcome *progress.AttemptOutcome, saveErr error) *ResultsScreen {
	return &ResultsScreen{report: report, outcome: outcome, saveErr: saveErr}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "enter", "q", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(Render(s.report, s.outcome, s.saveErr, width-4))
}

// Render formats a score report with any rewards earned. It is shared by
// the results screen and the non-interactive CLI output.
func Render(r qz.ScoreReport, outcome *progress.AttemptOutcome, saveErr error, width int) string {
	var b strings.Builder

	verdict := theme.Incorrect.Render("Not passed")
	if r.Passed {
		verdict = theme.Correct.Render("Passed!")
	}
	b.WriteString(theme.Title.Render(r.TestTitle) + "  " + verdict + "\n")
	if r.SubmittedBy == qz.SubmittedTimeout {
		b.WriteString(theme.Hint.Render("Time ran out, answers were submitted automatically.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(components.NewProgressBar("Score", r.Percentage, width).View() + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%d of %d correct · %d answered · passing score %d%% · %s",
		r.CorrectCount, r.TotalQuestions, r.Answered, r.PassingScore, formatDuration(r.TimeTakenSeconds),
	)) + "\n\n")

	for _, qr := range r.Results {
		b.WriteString(resultLine(qr) + "\n")
	}

	if saveErr != nil {
		b.WriteString("\n" + theme.Incorrect.Render("Could not save attempt: "+saveErr.Error()) + "\n")
	}
	if outcome != nil {
		b.WriteString("\n" + RenderRewards(outcome.Rewards, width))
	}
	return b.String()
}

// RenderRewards formats XP, level changes and new badges.
func RenderRewards(rw progress.Rewards, width int) string {
	var b strings.Builder
	if rw.XPAwarded > 0 {
		b.WriteString(theme.Label.Render(fmt.Sprintf("+%d XP", rw.XPAwarded)) + "\n")
	}
	for _, lvl := range rw.LevelUps {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("⭐ Level up! You reached level %d", lvl)) + "\n")
	}
	if rw.XPAwarded > 0 || len(rw.LevelUps) > 0 {
		b.WriteString(components.XPBar(rw.LevelAfter, width) + "\n")
	}
	for _, badge := range rw.Badges {
		b.WriteString(components.BadgeLine(badge) + "\n")
	}
	return b.String()
}

func resultLine(qr qz.QuestionResult) string {
	n := fmt.Sprintf("Q%d", qr.Index+1)
	switch {
	case qr.Selected == qz.Unanswered:
		return theme.Subtitle.Render(n + "  – unanswered")
	case qr.Correct:
		return theme.Correct.Render(fmt.Sprintf("%s  ✓ option %s", n, components.OptionLabel(qr.Selected)))
	default:
		return theme.Incorrect.Render(fmt.Sprintf("%s  ✗ option %s", n, components.OptionLabel(qr.Selected)))
	}
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
}
