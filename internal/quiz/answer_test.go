package quiz

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptPrompter) Prompt(_ context.Context, text string) (string, error) {
	p.asked = append(p.asked, text)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func TestNormalizeAnswer(t *testing.T) {
	for _, in := range []string{"Roma", " roma ", "ROMA", "\tRoMa\n"} {
		got := NormalizeAnswer(in)
		assert.Equal(t, "roma", got, "input %q", in)
		assert.Equal(t, got, NormalizeAnswer(got), "idempotent for %q", in)
	}
	assert.Equal(t, "parís", NormalizeAnswer("  PARÍS "))
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		learner string
		stored  string
		want    bool
	}{
		{"Roma", "Roma", true},
		{" roma ", "Roma", true},
		{"ROMA", "Roma", true},
		{"Roma", " roma", true},
		{"Rome", "Roma", false},
		{"", "Roma", false},
		{"R oma", "Roma", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckAnswer(tt.learner, tt.stored), "%q vs %q", tt.learner, tt.stored)
	}
}

func newCapitals() *MemoryRepository {
	return NewMemoryRepository(
		[2]string{"Capital de Italia", "Roma"},
		[2]string{"Capital de Francia", "París"},
	)
}

func TestChecker_Correct(t *testing.T) {
	for _, answer := range []string{"Roma", " roma ", "ROMA"} {
		p := &scriptPrompter{answers: []string{answer}}
		ok, err := NewChecker(newCapitals(), p).Check(context.Background(), "1")
		require.NoError(t, err)
		assert.True(t, ok, "answer %q", answer)
		assert.Equal(t, []string{"Capital de Italia? "}, p.asked)
	}
}

func TestChecker_Incorrect(t *testing.T) {
	p := &scriptPrompter{answers: []string{"Paris"}}
	ok, err := NewChecker(newCapitals(), p).Check(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, p.asked, 1, "no retries")
}

func TestChecker_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		wantErr error
	}{
		{"missing id", nil, ErrMissingParameter},
		{"bad id", "abc", ErrNotANumber},
		{"unknown id", 999, ErrQuizNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptPrompter{answers: []string{"Roma"}}
			_, err := NewChecker(newCapitals(), p).Check(context.Background(), tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, p.asked, "must not prompt on failure")
		})
	}
}

func TestChecker_NotFoundMessage(t *testing.T) {
	_, err := NewChecker(newCapitals(), &scriptPrompter{}).Check(context.Background(), "999")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 999, nf.ID)
	assert.EqualError(t, err, "there is no quiz with id=999")
}

func TestChecker_PromptError(t *testing.T) {
	_, err := NewChecker(newCapitals(), &scriptPrompter{}).Check(context.Background(), 2)
	assert.ErrorIs(t, err, io.EOF)
}
