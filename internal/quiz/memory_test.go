package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newCapitals()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Quiz{
		{ID: 1, Question: "Capital de Italia", Answer: "Roma"},
		{ID: 2, Question: "Capital de Francia", Answer: "París"},
	}, all)

	q, err := repo.Create(ctx, "Capital de España", "Madrid")
	require.NoError(t, err)
	assert.Equal(t, 3, q.ID)

	got, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Answer = "mutated"
	again, _ := repo.FindByID(ctx, 3)
	assert.Equal(t, "Madrid", again.Answer, "reads are copies")

	_, err = repo.Update(ctx, 3, "Capital de España", "MADRID")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 3))
	got, err = repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, 3), ErrQuizNotFound)
	_, err = repo.Update(ctx, 3, "q", "a")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestMemoryRepository_Validation(t *testing.T) {
	repo := newCapitals()

	_, err := repo.Create(context.Background(), "Capital de Italia", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{MsgEmptyAnswer, MsgDuplicateQuestion}, verr.Violations)
	assert.Contains(t, err.Error(), MsgEmptyAnswer)
}
