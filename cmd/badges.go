package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/app"
	"github.com/vidhya/vidhya/internal/rewards"
	"github.com/vidhya/vidhya/internal/screens/badges"
	"github.com/vidhya/vidhya/internal/ui/components"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			stats, err := headerStats(ctx, svc)
			if err != nil {
				return err
			}
			return app.Run(badges.New(svc.Badges), app.Options{Stats: stats})
		}

		all, err := svc.Badges(ctx)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No badges yet.")
			return nil
		}

		counts := make(map[rewards.BadgeType]int)
		for _, b := range all {
			counts[b.Type]++
		}
		fmt.Printf("%-4s %-18s %s\n", "", "Type", "Count")
		fmt.Println(strings.Repeat("─", 30))
		for _, t := range rewards.AllBadgeTypes() {
			fmt.Printf("%-4s %-18s %d\n", t.Icon(), t.DisplayName(), counts[t])
		}
		fmt.Println()
		for _, b := range all {
			fmt.Println(components.BadgeLine(b))
		}
		return nil
	},
}

func init() {
	badgesCmd.Flags().BoolP("interactive", "i", false, "Browse badges by type")
}
