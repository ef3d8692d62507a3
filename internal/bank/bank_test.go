package bank

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzer/internal/quiz"
)

func TestParse_Valid(t *testing.T) {
	b, err := Parse(strings.NewReader(`{"quizzes":[
		{"question":"Capital de Italia","answer":"Roma"},
		{"question":"Capital de Francia","answer":"París"}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Question: "Capital de Italia", Answer: "Roma"},
		{Question: "Capital de Francia", Answer: "París"},
	}, b.Quizzes)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"quizzes":`},
		{"missing quizzes", `{}`},
		{"quizzes not array", `{"quizzes":{}}`},
		{"missing answer", `{"quizzes":[{"question":"q"}]}`},
		{"empty question", `{"quizzes":[{"question":"","answer":"a"}]}`},
		{"answer not string", `{"quizzes":[{"question":"q","answer":7}]}`},
		{"unknown field", `{"quizzes":[{"question":"q","answer":"a","hint":"h"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestImport_SkipsRejectedEntries(t *testing.T) {
	repo := quiz.NewMemoryRepository([2]string{"Capital de Italia", "Roma"})
	b := &Bank{Quizzes: []Entry{
		{Question: "Capital de Italia", Answer: "Roma"},
		{Question: "  Capital de Francia ", Answer: " París "},
		{Question: "Capital de España", Answer: "   "},
	}}

	res, err := Import(context.Background(), repo, b)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, []string{quiz.MsgDuplicateQuestion}, res.Skipped[0].Violations)
	assert.Equal(t, []string{quiz.MsgEmptyAnswer}, res.Skipped[1].Violations)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Capital de Francia", all[1].Question)
	assert.Equal(t, "París", all[1].Answer)
}

func TestExport_RoundTrip(t *testing.T) {
	repo := quiz.NewMemoryRepository(
		[2]string{"Capital de Italia", "Roma"},
		[2]string{"Capital de Francia", "París"},
	)

	var buf bytes.Buffer
	n, err := Export(context.Background(), repo, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	b, err := Parse(&buf)
	require.NoError(t, err)
	assert.Len(t, b.Quizzes, 2)
	assert.Equal(t, "Roma", b.Quizzes[0].Answer)
}

func TestExport_EmptyIsValid(t *testing.T) {
	var buf bytes.Buffer
	_, err := Export(context.Background(), quiz.NewMemoryRepository(), &buf)
	require.NoError(t, err)

	b, err := Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, b.Quizzes)
}
