// Package quiz holds the quiz domain: the Quiz record, the repository
// contract, id validation and the answer checker.
package quiz

import (
	"context"
	"strings"
)

// Quiz is a question/answer pair. IDs are assigned by the repository.
type Quiz struct {
	ID       int
	Question string
	Answer   string
}

// Repository stores quizzes. FindByID returns nil, nil when no quiz has
// the given id.
type Repository interface {
	FindAll(ctx context.Context) ([]Quiz, error)
	FindByID(ctx context.Context, id int) (*Quiz, error)
	Create(ctx context.Context, question, answer string) (Quiz, error)
	Update(ctx context.Context, id int, question, answer string) (Quiz, error)
	Delete(ctx context.Context, id int) error
}

// Violation messages reported by Validate and by repositories.
const (
	MsgEmptyQuestion     = "the question cannot be empty"
	MsgEmptyAnswer       = "the answer cannot be empty"
	MsgDuplicateQuestion = "a quiz with that question already exists"
)

// Validate checks the field-level rules shared by every repository.
// Uniqueness depends on stored data and is checked by the repository.
func Validate(question, answer string) []string {
	var violations []string
	if strings.TrimSpace(question) == "" {
		violations = append(violations, MsgEmptyQuestion)
	}
	if strings.TrimSpace(answer) == "" {
		violations = append(violations, MsgEmptyAnswer)
	}
	return violations
}
