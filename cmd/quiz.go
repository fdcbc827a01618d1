package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/app"
	"github.com/vidhya/vidhya/internal/progress"
	qz "github.com/vidhya/vidhya/internal/quiz"
	"github.com/vidhya/vidhya/internal/screens/history"
	quizscreen "github.com/vidhya/vidhya/internal/screens/quiz"
	"github.com/vidhya/vidhya/internal/store"
	"github.com/vidhya/vidhya/internal/ui/layout"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take timed quizzes and review attempts",
}

var quizTakeCmd = &cobra.Command{
	Use:   "take <file|test-id>",
	Short: "Start a timed quiz attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		test, err := loadTest(cmd, args[0])
		if err != nil {
			return err
		}
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		stats, err := headerStats(ctx, svc)
		if err != nil {
			return err
		}

		scr, err := quizscreen.New(test, svc.RecordAttempt)
		if err != nil {
			return err
		}
		return app.Run(scr, app.Options{Stats: stats})
	},
}

var quizHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		testID, _ := cmd.Flags().GetString("test")
		limit, _ := cmd.Flags().GetInt("limit")
		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			stats, err := headerStats(cmd.Context(), svc)
			if err != nil {
				return err
			}
			scr := history.New(func(ctx context.Context) ([]store.AttemptRecord, error) {
				return svc.Attempts(ctx, testID, limit)
			})
			return app.Run(scr, app.Options{Stats: stats})
		}

		attempts, err := svc.Attempts(cmd.Context(), testID, limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("%-20s %-28s %-8s %-8s %-8s %s\n", "Date", "Test", "Score", "Result", "Time", "Submitted")
		fmt.Println(strings.Repeat("─", 86))
		for _, a := range attempts {
			result := "fail"
			if a.Passed {
				result = "pass"
			}
			fmt.Printf("%-20s %-28s %-8s %-8s %-8s %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(a.TestTitle, 28),
				fmt.Sprintf("%d%%", a.Percentage),
				result,
				quizscreen.FormatClock(a.TimeTakenSecs),
				a.SubmittedBy,
			)
		}
		return nil
	},
}

var quizValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a quiz definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := qz.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d questions, %d min, pass at %d%%)\n",
			t.ID, t.TotalQuestions(), t.DurationMinutes, t.PassingScore)
		return nil
	},
}

func init() {
	quizHistoryCmd.Flags().String("test", "", "Only attempts for this test ID")
	quizHistoryCmd.Flags().Int("limit", 20, "Maximum attempts to show")
	quizHistoryCmd.Flags().BoolP("interactive", "i", false, "Browse attempts with per-question results")

	quizCmd.AddCommand(quizTakeCmd)
	quizCmd.AddCommand(quizHistoryCmd)
	quizCmd.AddCommand(quizValidateCmd)
}

func headerStats(ctx context.Context, svc *progress.Service) (layout.HeaderStats, error) {
	info, err := svc.Level(ctx)
	if err != nil {
		return layout.HeaderStats{}, err
	}
	streak, err := svc.Streak(ctx)
	if err != nil {
		return layout.HeaderStats{}, err
	}
	return layout.HeaderStats{Level: info.Level, XP: info.CurrentXP, Streak: streak.Current}, nil
}
