// Package console is the terminal boundary of the shell: a Printer for
// output and Prompters that read one line of input at a time.
package console

import (
	"fmt"
	"image/color"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// Printer writes user-facing output. With color disabled it never emits
// ANSI sequences.
type Printer struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// NewPrinter creates a Printer writing normal output to out and error
// reports to errOut.
func NewPrinter(out, errOut io.Writer, color bool) *Printer {
	return &Printer{out: out, err: errOut, color: color}
}

// Color reports whether styled output is enabled.
func (p *Printer) Color() bool {
	return p.color
}

// Log writes one line.
func (p *Printer) Log(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Logf formats and writes one line.
func (p *Printer) Logf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Banner writes msg in large letters in the given color.
func (p *Printer) Banner(msg string, c color.Color) {
	fmt.Fprintln(p.out, theme.RenderBanner(msg, c, p.color))
}

// Error writes an error report.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.err, "%s %s\n", p.Style("Error:", theme.ErrorText), p.Style(msg, theme.Question))
}

// Style renders s with style when color is enabled.
func (p *Printer) Style(s string, style lipgloss.Style) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Key renders an id or arrow in the accent color.
func (p *Printer) Key(s string) string {
	return p.Style(s, theme.Key)
}

// PromptText styles text shown before reading input.
func (p *Printer) PromptText(text string) string {
	return p.Style(text, theme.Question)
}
