package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vidhya/vidhya/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vidhya",
	Short: "Learn in the terminal",
	Long:  "Vidhya is a terminal e-learning app: courses of sequentially unlocked lessons, timed quizzes, XP levels and badges.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIDHYA_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Content directory with courses/ and tests/ (overrides VIDHYA_CONTENT env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress events to stderr")

	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VIDHYA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns the content directory using --content, then
// VIDHYA_CONTENT, then ./content.
func resolveContentDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	if p := os.Getenv("VIDHYA_CONTENT"); p != "" {
		return p
	}
	return "content"
}

// newLogger builds the stderr logger. VIDHYA_LOG_LEVEL wins over --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelInfo
	}
	if env := os.Getenv("VIDHYA_LOG_LEVEL"); env != "" {
		level = parseLevel(env, level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
