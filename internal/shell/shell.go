// Package shell is the interactive command loop of quizzer.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizzer/internal/logging"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/console"
)

// DefaultPrompt is shown before each command.
const DefaultPrompt = "quiz > "

// DefaultCredits are listed by the credits command.
var DefaultCredits = []string{"Alberto", "Hueso"}

// Options configures a Shell. Zero values pick the defaults.
type Options struct {
	Prompt  string
	Credits []string
	Player  session.Options
}

// Shell reads commands one line at a time and runs them against a quiz
// repository. Exactly one command is in flight at any time.
type Shell struct {
	repo    quiz.Repository
	out     *console.Printer
	in      console.Prompter
	checker *quiz.Checker
	player  *session.Player
	prompt  string
	credits []string
}

// New creates a Shell.
func New(repo quiz.Repository, out *console.Printer, in console.Prompter, opts Options) *Shell {
	s := &Shell{
		repo:    repo,
		out:     out,
		in:      in,
		checker: quiz.NewChecker(repo, in),
		prompt:  opts.Prompt,
		credits: opts.Credits,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.credits == nil {
		s.credits = DefaultCredits
	}
	s.player = session.NewPlayer(repo, s.checker, &playReporter{out: out}, opts.Player)
	return s
}

// Run prompts for commands until quit, end of input or cancellation.
func (s *Shell) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	logger.Info().Msg("shell started")

	for {
		line, err := s.in.Prompt(ctx, s.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				logger.Info().Err(err).Msg("shell input closed")
				s.out.Log("")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if quit := s.Dispatch(ctx, line); quit {
			logger.Info().Msg("shell quit")
			return nil
		}
	}
}

// Dispatch runs one command line and reports whether the shell should
// stop. Every error is reported to the user here.
func (s *Shell) Dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd := strings.ToLower(fields[0])

	// The id argument is absent rather than empty when not typed.
	var arg any
	if len(fields) > 1 {
		arg = fields[1]
	}

	logger := logging.FromContext(ctx)
	logger.Debug().Str("command", cmd).Msg("dispatch")

	var err error
	switch cmd {
	case "h", "help":
		s.help()
	case "list":
		err = s.list(ctx)
	case "show":
		err = s.show(ctx, arg)
	case "add":
		err = s.add(ctx)
	case "delete":
		err = s.delete(ctx, arg)
	case "edit":
		err = s.edit(ctx, arg)
	case "test":
		s.testQuiz(ctx, arg)
	case "p", "play":
		s.Play(ctx)
	case "credits":
		s.showCredits()
	case "q", "quit":
		return true
	default:
		s.out.Error(fmt.Sprintf("Unknown command: '%s'", fields[0]))
		s.out.Logf("Use %s to see all the commands.", s.out.Key("help"))
	}

	if err != nil {
		logger.Warn().Err(err).Str("command", cmd).Msg("command failed")
		s.reportError(err)
	}
	return false
}

// reportError shows err to the user. Validation errors list each
// violation on its own line.
func (s *Shell) reportError(err error) {
	var verr *quiz.ValidationError
	switch {
	case errors.As(err, &verr):
		s.out.Error("The quiz is invalid:")
		for _, v := range verr.Violations {
			s.out.Error(v)
		}
	case errors.Is(err, io.EOF):
		s.out.Error("input closed")
	case err.Error() == "":
		s.out.Error(fmt.Sprintf("%#v", err))
	default:
		s.out.Error(err.Error())
	}
}
