package shell

import (
	"context"
	"strconv"
	"strings"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

var helpLines = []string{
	"  h|help - Show this help.",
	"  list - List the existing quizzes.",
	"  show <id> - Show the question and the answer of the given quiz.",
	"  add - Add a new quiz interactively.",
	"  delete <id> - Delete the given quiz.",
	"  edit <id> - Edit the given quiz.",
	"  test <id> - Test the given quiz.",
	"  p|play - Play: answer every quiz in random order.",
	"  credits - Credits.",
	"  q|quit - Quit the program.",
}

func (s *Shell) help() {
	s.out.Log("Commands:")
	for _, l := range helpLines {
		s.out.Log(l)
	}
}

func (s *Shell) list(ctx context.Context) error {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		s.out.Log(s.out.Style("No quizzes yet. Use add to create one.", theme.Hint))
		return nil
	}
	for _, q := range all {
		s.out.Logf("  [%s]: %s", s.out.Key(strconv.Itoa(q.ID)), q.Question)
	}
	return nil
}

// fetch validates raw and loads the quiz it names.
func (s *Shell) fetch(ctx context.Context, raw any) (*quiz.Quiz, error) {
	id, err := quiz.ValidateID(raw)
	if err != nil {
		return nil, err
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, &quiz.NotFoundError{ID: id}
	}
	return q, nil
}

func (s *Shell) show(ctx context.Context, raw any) error {
	q, err := s.fetch(ctx, raw)
	if err != nil {
		return err
	}
	s.out.Logf("  [%s]: %s %s %s", s.out.Key(strconv.Itoa(q.ID)), q.Question, s.out.Key("=>"), q.Answer)
	return nil
}

func (s *Shell) add(ctx context.Context) error {
	question, err := s.in.Prompt(ctx, " Enter a question: ")
	if err != nil {
		return err
	}
	answer, err := s.in.Prompt(ctx, " Enter the answer: ")
	if err != nil {
		return err
	}

	q, err := s.repo.Create(ctx, strings.TrimSpace(question), strings.TrimSpace(answer))
	if err != nil {
		return err
	}
	s.out.Logf(" %s: %s %s %s", s.out.Key("Added"), q.Question, s.out.Key("=>"), q.Answer)
	return nil
}

func (s *Shell) delete(ctx context.Context, raw any) error {
	q, err := s.fetch(ctx, raw)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, q.ID); err != nil {
		return err
	}
	s.out.Logf(" Deleted quiz [%s]: %s", s.out.Key(strconv.Itoa(q.ID)), q.Question)
	return nil
}

// edit offers the current question and answer for editing and saves the
// result through the repository.
func (s *Shell) edit(ctx context.Context, raw any) error {
	current, err := s.fetch(ctx, raw)
	if err != nil {
		return err
	}

	question, err := s.in.PromptDefault(ctx, " Enter a question: ", current.Question)
	if err != nil {
		return err
	}
	answer, err := s.in.PromptDefault(ctx, " Enter the answer: ", current.Answer)
	if err != nil {
		return err
	}

	q, err := s.repo.Update(ctx, current.ID, strings.TrimSpace(question), strings.TrimSpace(answer))
	if err != nil {
		return err
	}
	s.out.Logf(" Quiz [%s] changed to: %s %s %s", s.out.Key(strconv.Itoa(q.ID)), q.Question, s.out.Key("=>"), q.Answer)
	return nil
}

// testQuiz asks one quiz. Every outcome, including errors, is reported
// here and control goes back to the prompt.
func (s *Shell) testQuiz(ctx context.Context, raw any) {
	correct, err := s.checker.Check(ctx, raw)
	switch {
	case err != nil:
		s.reportError(err)
	case correct:
		s.out.Log("Your answer is correct.")
		s.out.Banner("Correct", theme.Success)
	default:
		s.out.Log("Your answer is incorrect.")
		s.out.Banner("Incorrect", theme.Error)
	}
}

// Play runs one play session and returns its summary.
func (s *Shell) Play(ctx context.Context) session.Summary {
	return s.player.Play(ctx)
}

func (s *Shell) showCredits() {
	s.out.Log("Authors:")
	for _, name := range s.credits {
		s.out.Log(s.out.Style(name, theme.Correct))
	}
}
