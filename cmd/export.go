package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/bank"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Export every quiz as a JSON bank file (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *app.Env) error {
			var w io.Writer = cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			n, err := bank.Export(ctx, env.Store.QuizRepo(), w)
			if err != nil {
				return err
			}
			cmd.PrintErrf("Exported %d quizzes.\n", n)
			return nil
		})
	},
}
