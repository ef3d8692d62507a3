package session

import (
	"slices"
	"time"
)

// State is a phase of the play state machine.
type State int

const (
	StateIdle     State = iota // Created, nothing asked yet
	StateChecking              // Waiting on the answer to Current
	StateFinished              // Terminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChecking:
		return "checking"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome records why a session finished.
type Outcome int

const (
	OutcomeNone        Outcome = iota // Still running
	OutcomeEmpty                      // No quizzes to ask
	OutcomeCompleted                  // Every quiz answered correctly
	OutcomeWrongAnswer                // Stopped on the first wrong answer
	OutcomeFailed                     // Stopped by an error
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeEmpty:
		return "empty"
	case OutcomeCompleted:
		return "completed"
	case OutcomeWrongAnswer:
		return "wrong_answer"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) Outcome {
	for o := OutcomeNone; o <= OutcomeFailed; o++ {
		if o.String() == s {
			return o
		}
	}
	return OutcomeNone
}

// Session is the state of one play-through. It is owned by a single Play
// call and never shared.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Pending holds the quiz ids not asked yet. Ids are unique.
	Pending []int

	// Total is the number of quizzes in the snapshot.
	Total int

	// Asked counts questions drawn so far.
	Asked int

	// Score counts correct answers.
	Score int

	// Current is the quiz id being checked while in StateChecking.
	Current int

	State   State
	Outcome Outcome
	Err     error

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSession snapshots ids into a fresh session with a zero score.
// Duplicate ids are dropped.
func NewSession(id string, ids []int, now time.Time) *Session {
	pending := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, qid := range ids {
		if !seen[qid] {
			seen[qid] = true
			pending = append(pending, qid)
		}
	}
	return &Session{
		ID:        id,
		Pending:   pending,
		Total:     len(pending),
		State:     StateIdle,
		StartedAt: now,
	}
}

// Next draws the next quiz id, removes it from Pending and moves to
// StateChecking. The id is removed before it is checked so a failing
// check can never cause it to be asked again.
func (s *Session) Next(sel Selector) int {
	s.Current, s.Pending = Draw(s.Pending, sel)
	s.Asked++
	s.State = StateChecking
	return s.Current
}

// Correct records a right answer and reports whether the session is
// now exhausted.
func (s *Session) Correct() bool {
	s.Score++
	return len(s.Pending) == 0
}

// Finish moves the session to StateFinished.
func (s *Session) Finish(outcome Outcome, err error, now time.Time) {
	s.State = StateFinished
	s.Outcome = outcome
	s.Err = err
	s.FinishedAt = now
}

// Remaining returns a copy of the pending ids.
func (s *Session) Remaining() []int {
	return slices.Clone(s.Pending)
}
