package quiz

import (
	"context"
	"strings"

	"github.com/abhisek/quizzer/internal/logging"
)

// Prompter reads one line of user input after showing text.
type Prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
}

// NormalizeAnswer trims surrounding whitespace and lower-cases the answer.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// CheckAnswer compares a learner answer against the stored one.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
func CheckAnswer(learnerAnswer, answer string) bool {
	return NormalizeAnswer(learnerAnswer) == NormalizeAnswer(answer)
}

// Checker asks a single quiz and reports whether the answer was right.
type Checker struct {
	repo     Repository
	prompter Prompter
}

// NewChecker creates a Checker reading answers from prompter.
func NewChecker(repo Repository, prompter Prompter) *Checker {
	return &Checker{repo: repo, prompter: prompter}
}

// Check validates raw as an id, fetches the quiz, asks its question once
// and compares the answer. A wrong answer is (false, nil); errors are kept
// for faults such as a bad id or a missing quiz.
func (c *Checker) Check(ctx context.Context, raw any) (bool, error) {
	id, err := ValidateID(raw)
	if err != nil {
		return false, err
	}

	q, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if q == nil {
		return false, &NotFoundError{ID: id}
	}

	answer, err := c.prompter.Prompt(ctx, QuestionPrompt(q.Question))
	if err != nil {
		return false, err
	}

	correct := CheckAnswer(answer, q.Answer)
	logger := logging.FromContext(ctx)
	logger.Debug().Int("quiz_id", id).Bool("correct", correct).Msg("answer checked")
	return correct, nil
}

// QuestionPrompt renders a question as shown to the user.
func QuestionPrompt(question string) string {
	return question + "? "
}
