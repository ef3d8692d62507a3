package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session over every quiz and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *app.Env) error {
			env.Shell.Play(ctx)
			return nil
		})
	},
}
