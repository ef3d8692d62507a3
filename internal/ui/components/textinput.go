package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// LineInput is a single-line editor that runs until the user submits
// with Enter or aborts with Ctrl+C (or Ctrl+D on an empty line).
type LineInput struct {
	Model     textinput.Model
	submitted bool
	aborted   bool
}

// NewLineInput creates a focused line editor showing prompt and starting
// with initial as its editable value.
func NewLineInput(prompt, initial string) LineInput {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return LineInput{Model: ti}
}

// Init returns the initial command.
func (t LineInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t LineInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			t.submitted = true
			return t, tea.Quit
		case "ctrl+c":
			t.aborted = true
			return t, tea.Quit
		case "ctrl+d":
			if t.Model.Value() == "" {
				t.aborted = true
				return t, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the editor. Once finished it leaves the prompt and the
// final value on screen, followed by a newline.
func (t LineInput) View() tea.View {
	if t.submitted || t.aborted {
		return tea.NewView(t.Model.Prompt + t.Model.Value() + "\n")
	}
	return tea.NewView(t.Model.View())
}

// Value returns the current input value.
func (t LineInput) Value() string {
	return t.Model.Value()
}

// Submitted reports whether the user pressed Enter.
func (t LineInput) Submitted() bool {
	return t.submitted
}

// Aborted reports whether the user closed the input.
func (t LineInput) Aborted() bool {
	return t.aborted
}
