package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every quiz and the play history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return errors.New("reset deletes all data; run again with --force")
		}
		return withEnv(cmd, func(ctx context.Context, env *app.Env) error {
			if err := env.Store.Reset(ctx); err != nil {
				return err
			}
			env.Printer.Log("All quizzes and sessions deleted.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deleting all data")
}
