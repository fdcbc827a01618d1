// Package coursemap implements the interactive course screen: modules as
// sections, lessons as rows, with lock states and lesson completion.
package coursemap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/progress"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/ui/components"
	"github.com/vidhya/vidhya/internal/ui/layout"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// CompleteFunc marks a lesson as completed and returns what it earned.
type CompleteFunc func(ctx context.Context, lessonID string) (*progress.LessonOutcome, error)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	module int
	lesson curriculum.LessonState
}

type lessonCompletedMsg struct {
	Outcome *progress.LessonOutcome
	Err     error
}

// CourseMapScreen displays one course organized by module.
type CourseMapScreen struct {
	course       curriculum.Curriculum
	progress     curriculum.Progress
	rows         []row
	cursor       int
	scrollOffset int
	onComplete   CompleteFunc
	status       string
	statusErr    bool
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// New creates a course screen from the learner's current progress. The
// cursor starts on the next lesson to take.
func New(c curriculum.Curriculum, p curriculum.Progress, onComplete CompleteFunc) *CourseMapScreen {
	s := &CourseMapScreen{course: c, onComplete: onComplete}
	s.setProgress(p)
	return s
}

func (s *CourseMapScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseMapScreen) Title() string {
	return s.course.Title
}

// KeyHints returns the key binding hints for the footer.
func (s *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Module"},
		{Key: "Enter", Description: "Complete"},
		{Key: "q", Description: "Quit"},
	}
}

// Progress returns the lock state currently displayed.
func (s *CourseMapScreen) Progress() curriculum.Progress {
	return s.progress
}

// Selected returns the lesson under the cursor.
func (s *CourseMapScreen) Selected() (curriculum.LessonState, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowLesson {
		return curriculum.LessonState{}, false
	}
	return s.rows[s.cursor].lesson, true
}

func (s *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonCompletedMsg:
		s.handleCompleted(msg)
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextModule()
		case "shift+tab":
			s.prevModule()
		case "enter", "c":
			return s, s.completeSelected()
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *CourseMapScreen) View(width, height int) string {
	var lines []string

	overall := components.NewProgressBar("Course", s.progress.Percent(), min(width-4, 60)).View()
	lines = append(lines, "  "+overall)
	if !s.progress.Enrolled {
		lines = append(lines, "  "+theme.Hint.Render("Not enrolled. Every lesson stays locked until you enroll."))
	}
	if s.status != "" {
		style := theme.Label
		if s.statusErr {
			style = theme.Incorrect
		}
		for _, l := range strings.Split(strings.TrimRight(s.status, "\n"), "\n") {
			lines = append(lines, "  "+style.Render(l))
		}
	}

	// Rows fill whatever the summary lines leave.
	avail := height - len(lines) - 1
	s.adjustScroll(avail)

	lines = append(lines, "")
	visible := 0
	for i := s.scrollOffset; i < len(s.rows) && visible < avail; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, s.renderModuleHeader(r.module, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r.lesson, i == s.cursor, width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *CourseMapScreen) setProgress(p curriculum.Progress) {
	s.progress = p
	s.rows = s.rows[:0]
	for mi, ms := range p.Modules {
		s.rows = append(s.rows, row{kind: rowModuleHeader, module: mi})
		for _, l := range ms.Lessons {
			s.rows = append(s.rows, row{kind: rowLesson, module: mi, lesson: l})
		}
	}

	s.cursor = -1
	if next, ok := p.Next(); ok {
		s.focus(next.LessonID)
	}
	if s.cursor < 0 {
		s.cursor = 0
		s.moveCursor(1)
	}
}

// focus puts the cursor on the lesson with the given ID.
func (s *CourseMapScreen) focus(lessonID string) {
	for i, r := range s.rows {
		if r.kind == rowLesson && r.lesson.LessonID == lessonID {
			s.cursor = i
			return
		}
	}
}

// moveCursor moves the cursor by delta, skipping module headers.
func (s *CourseMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextModule jumps to the first lesson of the next module.
func (s *CourseMapScreen) nextModule() {
	current := s.rows[s.cursor].module
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].module != current {
			s.cursor = i
			return
		}
	}
}

// prevModule jumps to the first lesson of the previous module.
func (s *CourseMapScreen) prevModule() {
	target := s.rows[s.cursor].module - 1
	if target < 0 {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowLesson && r.module == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor and its module header in view.
func (s *CourseMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow].kind != rowModuleHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CourseMapScreen) completeSelected() tea.Cmd {
	l, ok := s.Selected()
	if !ok {
		return nil
	}
	switch {
	case l.Completed:
		s.setStatus(fmt.Sprintf("%s is already completed.", l.Title), false)
		return nil
	case !s.progress.Enrolled:
		s.setStatus("Enroll in this course to start learning.", true)
		return nil
	case l.Locked:
		s.setStatus(fmt.Sprintf("%s is locked. Finish the lesson before it first.", l.Title), true)
		return nil
	case s.onComplete == nil:
		return nil
	}

	onComplete, id := s.onComplete, l.LessonID
	return func() tea.Msg {
		out, err := onComplete(context.Background(), id)
		return lessonCompletedMsg{Outcome: out, Err: err}
	}
}

func (s *CourseMapScreen) handleCompleted(msg lessonCompletedMsg) {
	switch {
	case errors.Is(msg.Err, progress.ErrLessonLocked):
		s.setStatus("That lesson is still locked.", true)
		return
	case msg.Err != nil:
		s.setStatus("Could not save progress: "+msg.Err.Error(), true)
		return
	case msg.Outcome == nil:
		return
	}

	out := msg.Outcome
	s.setProgress(out.Progress)

	var b strings.Builder
	fmt.Fprintf(&b, "Completed %s", out.Lesson.Title)
	if out.XPAwarded > 0 {
		fmt.Fprintf(&b, "  +%d XP", out.XPAwarded)
	}
	for _, lvl := range out.LevelUps {
		fmt.Fprintf(&b, "\n⭐ Level up! You reached level %d", lvl)
	}
	for _, badge := range out.Badges {
		fmt.Fprintf(&b, "\n%s %s", badge.Type.Icon(), badge.Reason)
	}
	s.setStatus(b.String(), false)
}

func (s *CourseMapScreen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func (s *CourseMapScreen) renderModuleHeader(mi, width int) string {
	ms := s.progress.Modules[mi]
	name := fmt.Sprintf("%s  %d/%d", strings.ToUpper(ms.Title), ms.Completed, ms.Total)
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

func (s *CourseMapScreen) renderLessonRow(l curriculum.LessonState, selected bool, width int) string {
	var label string
	var nameStyle, labelStyle lipgloss.Style
	switch {
	case l.Completed:
		label = "Done"
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		labelStyle = nameStyle
	case l.Locked:
		label = "Locked"
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = nameStyle
	default:
		label = "Available"
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	}
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	nameWidth := max(width-4-3-2-10-4, 10)
	name := l.Title
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-1]) + "…"
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		l.Type.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)
}
