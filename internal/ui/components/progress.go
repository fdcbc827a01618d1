package components

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/leveling"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

// ProgressBar displays a labelled horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent int // 0-100
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = theme.Body.Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %3d%%", p.Percent)
	barWidth := p.Width - lipgloss.Width(result) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithDefaultBlend(),
		progress.WithoutPercentage(),
	)
	pct := min(max(float64(p.Percent)/100, 0), 1)

	return result + bar.ViewAs(pct) + theme.Subtitle.Render(suffix)
}

// XPBar renders level progress: the level label, a bar filled to the
// progress percentage and the XP still needed.
func XPBar(info leveling.LevelInfo, width int) string {
	label := theme.Label.Render(fmt.Sprintf("Lv %d", info.Level))
	detail := theme.Subtitle.Render(fmt.Sprintf("  %d/%d XP", info.CurrentXP, info.XPForNextLevel))

	barWidth := width - lipgloss.Width(label) - lipgloss.Width(detail) - 2
	if barWidth < 4 {
		barWidth = 4
	}
	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithDefaultBlend(),
		progress.WithoutPercentage(),
	)
	return label + "  " + bar.ViewAs(float64(info.ProgressPercent)/100) + detail
}
