package cmd

import (
	"github.com/abhisek/gurukul/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gurukul",
	Short: "AI tutoring orchestration service",
	Long:  "Gurukul — voice tutoring pipeline (speech-to-text, LLM reply, text-to-speech) and video render job orchestration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GURUKUL_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GURUKUL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
