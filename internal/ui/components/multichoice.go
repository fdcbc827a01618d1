package components

import (
	"fmt"
	"strings"

	"github.com/vidhya/vidhya/internal/ui/theme"
)

// MultiChoice renders a question's options with a cursor and the
// learner's chosen answer. After submission it marks the correct option.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Cursor   int
	Chosen   int // -1 if nothing chosen
	Revealed bool
	Correct  int // only used when Revealed
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// OptionLabel returns the 1-based label for option i.
func OptionLabel(i int) string {
	return fmt.Sprintf("%d", i+1)
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, mark, OptionLabel(i), opt)

		switch {
		case m.Revealed && i == m.Correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case m.Revealed && i == m.Chosen:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case m.Revealed:
			b.WriteString(theme.Subtitle.Render(line))
		case i == m.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
