package console

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/abhisek/quizzer/internal/ui/components"
)

// TermPrompter reads lines with an inline line editor. Pre-filled values
// can be edited in place.
type TermPrompter struct {
	in       io.Reader
	out      io.Writer
	decorate func(string) string
}

// NewTermPrompter creates a TermPrompter on the given terminal streams.
func NewTermPrompter(in io.Reader, out io.Writer, decorate func(string) string) *TermPrompter {
	if decorate == nil {
		decorate = func(s string) string { return s }
	}
	return &TermPrompter{in: in, out: out, decorate: decorate}
}

func (p *TermPrompter) Prompt(ctx context.Context, text string) (string, error) {
	return p.PromptDefault(ctx, text, "")
}

// PromptDefault runs one line editor starting with initial. Ctrl+C and
// Ctrl+D on an empty line close the input and return io.EOF.
func (p *TermPrompter) PromptDefault(ctx context.Context, text, initial string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prog := tea.NewProgram(
		components.NewLineInput(p.decorate(text), initial),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	line, ok := final.(components.LineInput)
	if !ok || line.Aborted() {
		return "", io.EOF
	}
	return line.Value(), nil
}

// IsTerminal reports whether both stdin and stdout are terminals.
func IsTerminal() bool {
	return isTTY(os.Stdin) && isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewPrompter picks the line editor for interactive terminals and the
// plain reader otherwise.
func NewPrompter(in io.Reader, out io.Writer, interactive bool, decorate func(string) string) Prompter {
	if interactive {
		return NewTermPrompter(in, out, decorate)
	}
	return NewLinePrompter(in, out, decorate)
}
