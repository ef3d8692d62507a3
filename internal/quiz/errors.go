package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingParameter = errors.New("missing <id> parameter")
	ErrNotANumber       = errors.New("the <id> parameter is not a number")
	ErrQuizNotFound     = errors.New("quiz not found")
)

// NotFoundError reports a lookup of an id that has no quiz.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no quiz with id=%d", e.ID)
}

// Is makes errors.Is(err, ErrQuizNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrQuizNotFound
}

// ValidationError is returned by Create and Update when the quiz breaks
// one or more rules. Each violation is reported separately.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid quiz: " + strings.Join(e.Violations, "; ")
}
