package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner progress, XP, attempts and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("reset deletes all learner data; rerun with --yes to confirm")
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		_, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Learner data in %s has been reset.\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
