// Package app wires configuration, storage and the terminal into a
// ready-to-run shell.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/logging"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/shell"
	"github.com/abhisek/quizzer/internal/store"
	"github.com/abhisek/quizzer/internal/ui/console"
)

// Options holds everything Open needs besides the configuration.
type Options struct {
	Config *config.App

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Interactive selects the terminal line editor and colored output.
	Interactive bool

	// Selector overrides the random order of play sessions.
	Selector session.Selector
}

// Env is an opened application: its store, output and shell.
type Env struct {
	Store   *store.Store
	Printer *console.Printer
	Shell   *shell.Shell

	closeLog func() error
}

// Open resolves paths, starts logging, opens the store and builds the
// shell. The returned context carries the logger.
func Open(ctx context.Context, opts Options) (context.Context, *Env, error) {
	cfg := opts.Config
	if cfg == nil {
		return ctx, nil, errors.New("app: missing config")
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return ctx, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logOut, closeLog, err := logging.OpenFile(cfg.ResolveLogFile(dbPath))
	if err != nil {
		return ctx, nil, err
	}
	logger := logging.New(logOut, cfg.LogLevel)
	ctx = logging.IntoContext(ctx, logger)

	st, err := store.Open(ctx, dbPath)
	if err != nil {
		closeLog()
		return ctx, nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info().Str("db", dbPath).Msg("store opened")

	if cfg.SeedDefaults {
		n, err := st.QuizRepo().SeedDefaults(ctx)
		if err != nil {
			st.Close()
			closeLog()
			return ctx, nil, fmt.Errorf("seed quizzes: %w", err)
		}
		if n > 0 {
			logger.Info().Int("count", n).Msg("seeded default quizzes")
		}
	}

	printer := console.NewPrinter(opts.Out, opts.Err, opts.Interactive && !cfg.NoColor)
	prompter := console.NewPrompter(opts.In, opts.Out, opts.Interactive, printer.PromptText)

	sh := shell.New(st.QuizRepo(), printer, prompter, shell.Options{
		Prompt: cfg.Prompt,
		Player: session.Options{
			Selector: opts.Selector,
			Recorder: st.SessionRepo(),
		},
	})

	return ctx, &Env{Store: st, Printer: printer, Shell: sh, closeLog: closeLog}, nil
}

// Close releases the store and the log file.
func (e *Env) Close() error {
	return errors.Join(e.Store.Close(), e.closeLog())
}

// Run opens the application and runs the shell until the user quits.
func Run(ctx context.Context, opts Options) error {
	ctx, env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	if opts.Interactive {
		env.Printer.Logf("Type %s to see the commands.", env.Printer.Key("help"))
	}
	return env.Shell.Run(ctx)
}
