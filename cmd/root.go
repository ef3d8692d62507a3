package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
)

var rootCmd = &cobra.Command{
	Use:          "quizzer",
	Short:        "Interactive quiz trainer",
	Long:         "quizzer keeps a bank of question/answer quizzes and drills you on them from the terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := appOptions(cmd)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), opts)
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides QUIZZER_DB env var)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Uint64("seed", 0, "Seed for the play order (random when unset)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
