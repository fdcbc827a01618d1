package components

import (
	"fmt"
	"strings"

	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/rewards"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// ModuleView renders a module header with its progress bar followed by
// one line per lesson showing whether it is done, available or locked.
func ModuleView(ms curriculum.ModuleState, width int) string {
	var b strings.Builder
	header := fmt.Sprintf("%s (%d/%d)", ms.Title, ms.Completed, ms.Total)
	b.WriteString(NewProgressBar(header, ms.Percent, width).View())
	b.WriteString("\n")

	for _, l := range ms.Lessons {
		b.WriteString("  ")
		b.WriteString(LessonLine(l))
		b.WriteString("\n")
	}
	return b.String()
}

// LessonLine renders one lesson with its status marker.
func LessonLine(l curriculum.LessonState) string {
	line := fmt.Sprintf("%s %s  %s", l.Type.Icon(), l.Title, theme.Hint.Render(l.LessonID))
	switch {
	case l.Completed:
		return theme.Done.Render("✓ ") + line
	case l.Locked:
		return theme.Locked.Render("🔒 " + fmt.Sprintf("%s %s  %s", l.Type.Icon(), l.Title, l.LessonID))
	default:
		return theme.Selected.Render("▸ ") + line
	}
}

// BadgeLine renders a badge with its icon, rarity and reason.
func BadgeLine(b rewards.Badge) string {
	return fmt.Sprintf("%s %s  %s  %s",
		b.Type.Icon(),
		theme.Body.Bold(true).Render(b.Type.DisplayName()),
		theme.RarityStyle(b.Rarity).Render(b.Rarity.DisplayName()),
		theme.Subtitle.Render(b.Reason),
	)
}
