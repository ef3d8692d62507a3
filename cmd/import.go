package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/bank"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import quizzes from a JSON bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		b, err := bank.Parse(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		return withEnv(cmd, func(ctx context.Context, env *app.Env) error {
			res, err := bank.Import(ctx, env.Store.QuizRepo(), b)
			if err != nil {
				return err
			}
			for _, s := range res.Skipped {
				env.Printer.Error(fmt.Sprintf("skipped %q: %s", s.Entry.Question, strings.Join(s.Violations, "; ")))
			}
			env.Printer.Logf("Imported %d quizzes, skipped %d.", res.Imported, len(res.Skipped))
			return nil
		})
	},
}
