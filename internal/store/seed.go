package store

import (
	"context"
	"fmt"
)

// DefaultQuizzes are loaded into an empty store on first run.
var DefaultQuizzes = [][2]string{
	{"Capital de Italia", "Roma"},
	{"Capital de Francia", "París"},
	{"Capital de España", "Madrid"},
	{"Capital de Portugal", "Lisboa"},
}

// SeedDefaults inserts DefaultQuizzes when the store has no quizzes and
// returns how many were inserted.
func (r *QuizRepo) SeedDefaults(ctx context.Context) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, pair := range DefaultQuizzes {
		if _, err := r.Create(ctx, pair[0], pair[1]); err != nil {
			return 0, fmt.Errorf("seed %q: %w", pair[0], err)
		}
	}
	return len(DefaultQuizzes), nil
}
