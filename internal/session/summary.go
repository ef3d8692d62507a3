package session

import "time"

// Summary is the result of one finished session.
type Summary struct {
	SessionID  string
	Total      int
	Asked      int
	Score      int
	Outcome    Outcome
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is the wall-clock length of the session.
func (s Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// BuildSummary creates a Summary from a finished session.
func BuildSummary(state *Session) Summary {
	return Summary{
		SessionID:  state.ID,
		Total:      state.Total,
		Asked:      state.Asked,
		Score:      state.Score,
		Outcome:    state.Outcome,
		Err:        state.Err,
		StartedAt:  state.StartedAt,
		FinishedAt: state.FinishedAt,
	}
}
