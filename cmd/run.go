package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/console"
)

// appOptions loads the configuration and applies the persistent flags
// on top of it. Flags win over the environment.
func appOptions(cmd *cobra.Command) (app.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Options{}, err
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	opts := app.Options{
		Config:      cfg,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
		Interactive: console.IsTerminal(),
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		opts.Selector = session.NewSeededSelector(seed)
	}
	return opts, nil
}

// withEnv opens the application for a one-shot command and closes it
// when fn returns.
func withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *app.Env) error) error {
	opts, err := appOptions(cmd)
	if err != nil {
		return err
	}
	ctx, env, err := app.Open(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("open app: %w", err)
	}
	defer env.Close()
	return fn(ctx, env)
}
