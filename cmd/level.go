package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/leveling"
	"github.com/vidhya/vidhya/internal/ui/components"
)

var levelCmd = &cobra.Command{
	Use:   "level [total-xp]",
	Short: "Show the level for a total XP amount, or your current level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if n, _ := cmd.Flags().GetInt("table"); n > 0 {
			return printLevelTable(n)
		}

		var info leveling.LevelInfo
		if len(args) == 1 {
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid XP %q: %w", args[0], err)
			}
			if info, err = leveling.FromTotal(total); err != nil {
				return err
			}
		} else {
			svc, st, err := openService(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			if info, err = svc.Level(cmd.Context()); err != nil {
				return err
			}
		}

		fmt.Printf("Level:     %d\n", info.Level)
		fmt.Printf("XP:        %d / %d (%d to next level)\n", info.CurrentXP, info.XPForNextLevel, info.XPToNextLevel())
		fmt.Println(components.XPBar(info, 40))
		return nil
	},
}

func init() {
	levelCmd.Flags().Int("table", 0, "Print the XP table for the first N levels")
}

func printLevelTable(n int) error {
	fmt.Printf("%-8s %-14s %s\n", "Level", "XP to advance", "Total to reach")
	fmt.Println(strings.Repeat("─", 38))
	for lvl := 1; lvl <= n; lvl++ {
		cost, err := leveling.XPForLevel(lvl)
		if err != nil {
			return err
		}
		total, err := leveling.TotalForLevel(lvl)
		if err != nil {
			return err
		}
		fmt.Printf("%-8d %-14d %d\n", lvl, cost, total)
	}
	return nil
}
