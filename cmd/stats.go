package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/ui/components"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, streak, badges and course progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func runStats(cmd *cobra.Command) error {
	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	info, err := svc.Level(ctx)
	if err != nil {
		return err
	}
	streak, err := svc.Streak(ctx)
	if err != nil {
		return err
	}
	badges, err := svc.Badges(ctx)
	if err != nil {
		return err
	}

	fmt.Println(theme.Title.Render(fmt.Sprintf("Level %d", info.Level)))
	fmt.Println(components.XPBar(info, 40))
	fmt.Printf("Streak:  %d day(s), longest %d\n", streak.Current, streak.Longest)
	if streak.Current > 0 && !streak.ActiveToday {
		fmt.Println(theme.Hint.Render("Learn something today to keep your streak going."))
	}

	fmt.Println()
	fmt.Printf("Badges (%d)\n", len(badges))
	fmt.Println(strings.Repeat("─", 40))
	for _, b := range badges {
		fmt.Println(components.BadgeLine(b))
	}

	// Course listing is best effort; stats work without a content directory.
	courses, err := loadCourses(cmd)
	if err != nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("%-32s %s\n", "Course", "Progress")
	fmt.Println(strings.Repeat("─", 40))
	for _, c := range courses {
		p, err := svc.CourseProgress(ctx, c)
		if err != nil {
			return err
		}
		if !p.Enrolled {
			continue
		}
		fmt.Printf("%-32s %d%%\n", truncate(c.Title, 32), p.Percent())
	}
	return nil
}
