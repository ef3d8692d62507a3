package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads one line of input after showing text.
type Prompter interface {
	Prompt(ctx context.Context, text string) (string, error)

	// PromptDefault is Prompt with the current value of a field offered
	// for editing.
	PromptDefault(ctx context.Context, text, initial string) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// LinePrompter reads newline-terminated lines from any reader. It is used
// when input is not a terminal: pipes, files and tests.
type LinePrompter struct {
	r        *bufio.Reader
	w        io.Writer
	decorate func(string) string

	// pending holds a read started by a Prompt whose context was
	// cancelled, so the next Prompt picks it up instead of racing it.
	pending chan lineResult
}

// NewLinePrompter creates a LinePrompter. decorate styles the prompt text
// and may be nil.
func NewLinePrompter(r io.Reader, w io.Writer, decorate func(string) string) *LinePrompter {
	if decorate == nil {
		decorate = func(s string) string { return s }
	}
	return &LinePrompter{r: bufio.NewReader(r), w: w, decorate: decorate}
}

// Prompt writes text and waits for one line. The trailing newline is
// stripped. A final line without newline is returned before io.EOF.
func (p *LinePrompter) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, p.decorate(text))

	if p.pending == nil {
		p.pending = make(chan lineResult, 1)
		go p.read(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil && (!errors.Is(res.err, io.EOF) || res.line == "") {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// PromptDefault shows the current value as a hint. An empty line keeps
// it, since a plain reader cannot pre-fill the input.
func (p *LinePrompter) PromptDefault(ctx context.Context, text, initial string) (string, error) {
	if initial == "" {
		return p.Prompt(ctx, text)
	}
	line, err := p.Prompt(ctx, fmt.Sprintf("%s[%s] ", text, initial))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return initial, nil
	}
	return line, nil
}

func (p *LinePrompter) read(ch chan<- lineResult) {
	line, err := p.r.ReadString('\n')
	ch <- lineResult{line: line, err: err}
}
