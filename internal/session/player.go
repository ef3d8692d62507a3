package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizzer/internal/logging"
	"github.com/abhisek/quizzer/internal/quiz"
)

// QuizLister supplies the quizzes snapshotted at session start.
type QuizLister interface {
	FindAll(ctx context.Context) ([]quiz.Quiz, error)
}

// AnswerChecker asks one quiz and returns whether it was answered right.
type AnswerChecker interface {
	Check(ctx context.Context, raw any) (bool, error)
}

// Reporter receives the user-visible events of a session.
type Reporter interface {
	// NoQuestions is called when there is nothing to ask.
	NoQuestions()
	// Correct is called after each right answer with the running score.
	Correct(score int)
	// Completed is called when every quiz was answered right.
	Completed(score int)
	// Incorrect is called on the wrong answer that ends the session.
	Incorrect(score int)
	// Failed is called when an error ends the session.
	Failed(err error, score int)
}

// Recorder persists finished sessions.
type Recorder interface {
	Record(ctx context.Context, summary Summary) error
}

// Options configures a Player. Zero values pick the defaults.
type Options struct {
	Selector Selector
	Recorder Recorder
	Now      func() time.Time
	NewID    func() string
}

// Player runs play sessions over every quiz in random order.
type Player struct {
	quizzes  QuizLister
	checker  AnswerChecker
	reporter Reporter
	selector Selector
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

// NewPlayer creates a Player.
func NewPlayer(quizzes QuizLister, checker AnswerChecker, reporter Reporter, opts Options) *Player {
	p := &Player{
		quizzes:  quizzes,
		checker:  checker,
		reporter: reporter,
		selector: opts.Selector,
		recorder: opts.Recorder,
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if p.selector == nil {
		p.selector = NewRandomSelector()
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newID == nil {
		p.newID = uuid.NewString
	}
	return p
}

// Play runs one session to StateFinished and returns its summary. Errors
// end the session and are reported through the Reporter and the summary;
// they never escape as a return value.
func (p *Player) Play(ctx context.Context) Summary {
	var ids []int
	all, err := p.quizzes.FindAll(ctx)
	if err == nil {
		ids = make([]int, 0, len(all))
		for _, q := range all {
			ids = append(ids, q.ID)
		}
	}

	state := NewSession(p.newID(), ids, p.now())
	logger := logging.FromContext(ctx).With().Str("session_id", state.ID).Logger()
	logger.Info().Int("total", state.Total).Msg("session started")

	switch {
	case err != nil:
		err = fmt.Errorf("list quizzes: %w", err)
		p.reporter.Failed(err, 0)
		state.Finish(OutcomeFailed, err, p.now())
	case state.Total == 0:
		p.reporter.NoQuestions()
		state.Finish(OutcomeEmpty, nil, p.now())
	default:
		p.loop(ctx, state)
	}

	summary := BuildSummary(state)
	event := logger.Info()
	if summary.Err != nil {
		event = logger.Warn().Err(summary.Err)
	}
	event.Str("outcome", summary.Outcome.String()).
		Int("score", summary.Score).
		Int("asked", summary.Asked).
		Dur("duration", summary.Duration()).
		Msg("session finished")

	if p.recorder != nil {
		// Sessions ended by cancellation are still recorded.
		if err := p.recorder.Record(context.WithoutCancel(ctx), summary); err != nil {
			logger.Error().Err(err).Msg("record session")
		}
	}
	return summary
}

func (p *Player) loop(ctx context.Context, state *Session) {
	for state.State != StateFinished {
		id := state.Next(p.selector)

		correct, err := p.checker.Check(ctx, id)
		switch {
		case err != nil:
			p.reporter.Failed(err, state.Score)
			state.Finish(OutcomeFailed, err, p.now())
		case !correct:
			p.reporter.Incorrect(state.Score)
			state.Finish(OutcomeWrongAnswer, nil, p.now())
		case state.Correct():
			p.reporter.Correct(state.Score)
			p.reporter.Completed(state.Score)
			state.Finish(OutcomeCompleted, nil, p.now())
		default:
			p.reporter.Correct(state.Score)
		}
	}
}
