package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_ReadsLines(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first\r\nsecond\nlast"), &out, nil)
	ctx := context.Background()

	for _, want := range []string{"first", "second", "last"} {
		got, err := p.Prompt(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestLinePrompter_Decorates(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("x\n"), &out, func(s string) string { return "<" + s + ">" })

	_, err := p.Prompt(context.Background(), "q? ")
	require.NoError(t, err)
	assert.Equal(t, "<q? >", out.String())
}

func TestLinePrompter_PromptDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\nnew value\n"), &out, nil)
	ctx := context.Background()

	got, err := p.PromptDefault(ctx, "Question: ", "old value")
	require.NoError(t, err)
	assert.Equal(t, "old value", got, "empty line keeps the current value")

	got, err = p.PromptDefault(ctx, "Question: ", "old value")
	require.NoError(t, err)
	assert.Equal(t, "new value", got)
	assert.Contains(t, out.String(), "Question: [old value] ")
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	p := NewLinePrompter(pr, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)

	// A read abandoned by cancellation is handed to the next prompt.
	ctx2, cancel2 := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := p.Prompt(ctx2, "> ")
		assert.ErrorIs(t, err, context.Canceled)
	}()
	cancel2()
	<-done

	go func() { _, _ = pw.Write([]byte("late\n")) }()
	got, err := p.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}
