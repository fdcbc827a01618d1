package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/app"
	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/progress"
	"github.com/vidhya/vidhya/internal/screens/coursemap"
	"github.com/vidhya/vidhya/internal/screens/results"
	"github.com/vidhya/vidhya/internal/ui/components"
	"github.com/vidhya/vidhya/internal/ui/theme"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse courses and track lesson progress",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCourses(cmd)
		if err != nil {
			return err
		}

		var f curriculum.Filter
		typ, _ := cmd.Flags().GetString("type")
		f.Type = curriculum.ContentType(typ)
		f.Category, _ = cmd.Flags().GetString("category")
		f.Difficulty, _ = cmd.Flags().GetString("difficulty")
		f.Search, _ = cmd.Flags().GetString("search")
		if f.Type != "" && !f.Type.Valid() {
			return fmt.Errorf("unknown lesson type %q", typ)
		}

		courses = f.Apply(courses)
		if len(courses) == 0 {
			fmt.Println("No courses found.")
			return nil
		}

		fmt.Printf("%-20s %-32s %-14s %-12s %s\n", "ID", "Title", "Category", "Difficulty", "Lessons")
		fmt.Println(strings.Repeat("─", 88))
		for _, c := range courses {
			fmt.Printf("%-20s %-32s %-14s %-12s %d\n",
				truncate(c.ID, 20), truncate(c.Title, 32), c.Category, c.Difficulty, c.LessonCount())
		}
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course with lesson lock states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCourse(cmd, args[0])
		if err != nil {
			return err
		}
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := svc.CourseProgress(cmd.Context(), c)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(c.Title))
		if c.Description != "" {
			fmt.Println(theme.Subtitle.Render(c.Description))
		}
		if !p.Enrolled {
			fmt.Println(theme.Hint.Render("Not enrolled. Run: vidhya course enroll " + c.ID))
		} else {
			fmt.Println(components.NewProgressBar("Course", p.Percent(), 60).View())
		}
		fmt.Println()
		for _, ms := range p.Modules {
			fmt.Println(components.ModuleView(ms, 60))
		}
		if next, ok := p.Next(); ok {
			fmt.Printf("\nNext up: %s (%s)\n", next.Title, next.LessonID)
		}
		return nil
	},
}

var courseEnrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCourse(cmd, args[0])
		if err != nil {
			return err
		}
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		newly, err := svc.Enroll(cmd.Context(), c)
		if err != nil {
			return err
		}
		if !newly {
			fmt.Printf("Already enrolled in %s.\n", c.Title)
			return nil
		}
		fmt.Printf("Enrolled in %s.\n", c.Title)
		return nil
	},
}

var courseCompleteCmd = &cobra.Command{
	Use:   "complete <course-id> <lesson-id>",
	Short: "Mark an unlocked lesson as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCourse(cmd, args[0])
		if err != nil {
			return err
		}
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := svc.CompleteLesson(cmd.Context(), c, args[1])
		if err != nil {
			return err
		}
		if !out.Recorded {
			fmt.Printf("%s was already completed.\n", out.Lesson.Title)
			return nil
		}
		fmt.Printf("Completed %s. Course progress: %d%%\n", out.Lesson.Title, out.Progress.Percent())
		fmt.Print(results.RenderRewards(out.Rewards, 60))
		if next, ok := out.Progress.Next(); ok {
			fmt.Printf("Unlocked: %s (%s)\n", next.Title, next.LessonID)
		}
		return nil
	},
}

var courseOpenCmd = &cobra.Command{
	Use:   "open <course-id>",
	Short: "Browse a course interactively and complete lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCourse(cmd, args[0])
		if err != nil {
			return err
		}
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := svc.CourseProgress(ctx, c)
		if err != nil {
			return err
		}
		stats, err := headerStats(ctx, svc)
		if err != nil {
			return err
		}

		scr := coursemap.New(c, p, func(ctx context.Context, lessonID string) (*progress.LessonOutcome, error) {
			return svc.CompleteLesson(ctx, c, lessonID)
		})
		return app.Run(scr, app.Options{Stats: stats})
	},
}

var courseValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a course definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := curriculum.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d modules, %d lessons)\n", c.ID, len(c.Modules), c.LessonCount())
		return nil
	},
}

func init() {
	courseListCmd.Flags().String("type", "", "Only courses with lessons of this type (video, text, quiz, interactive)")
	courseListCmd.Flags().String("category", "", "Filter by category")
	courseListCmd.Flags().String("difficulty", "", "Filter by difficulty")
	courseListCmd.Flags().String("search", "", "Search titles and descriptions")

	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
	courseCmd.AddCommand(courseEnrollCmd)
	courseCmd.AddCommand(courseCompleteCmd)
	courseCmd.AddCommand(courseOpenCmd)
	courseCmd.AddCommand(courseValidateCmd)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
