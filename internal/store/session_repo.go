package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizzer/internal/session"
)

const sessionsTable = "play_sessions"

// SessionRepo stores finished play sessions.
type SessionRepo struct {
	db *sql.DB
}

var _ session.Recorder = (*SessionRepo)(nil)

// SessionStats aggregates every recorded session.
type SessionStats struct {
	Played    int
	Completed int
	BestScore int
}

// Record inserts a finished session.
func (r *SessionRepo) Record(ctx context.Context, s session.Summary) error {
	errText := ""
	if s.Err != nil {
		errText = s.Err.Error()
	}

	query, args := builder.Insert(sessionsTable).
		Columns("id", "started_at", "finished_at", "total", "asked", "score", "outcome", "error").
		Values(s.SessionID, s.StartedAt.UnixMilli(), s.FinishedAt.UnixMilli(),
			s.Total, s.Asked, s.Score, s.Outcome.String(), errText).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session %s: %w", s.SessionID, err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]session.Summary, error) {
	sel := builder.Select("id", "started_at", "finished_at", "total", "asked", "score", "outcome", "error").
		From(builder.Table(sessionsTable)).
		OrderBy(entsql.Desc("started_at"), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []session.Summary
	for rows.Next() {
		var (
			s                   session.Summary
			started, finished   int64
			outcome, errMessage string
		)
		if err := rows.Scan(&s.SessionID, &started, &finished, &s.Total, &s.Asked, &s.Score, &outcome, &errMessage); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.StartedAt = time.UnixMilli(started)
		s.FinishedAt = time.UnixMilli(finished)
		s.Outcome = session.ParseOutcome(outcome)
		if errMessage != "" {
			s.Err = recordedError(errMessage)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Stats returns aggregate numbers over all recorded sessions.
func (r *SessionRepo) Stats(ctx context.Context) (SessionStats, error) {
	query, args := builder.Select(
		entsql.Count("*"),
		"COALESCE(SUM(CASE WHEN `outcome` = 'completed' THEN 1 ELSE 0 END), 0)",
		"COALESCE(MAX(`score`), 0)",
	).From(builder.Table(sessionsTable)).Query()

	var st SessionStats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Played, &st.Completed, &st.BestScore); err != nil {
		return SessionStats{}, fmt.Errorf("session stats: %w", err)
	}
	return st, nil
}

// recordedError is an error message read back from storage.
type recordedError string

func (e recordedError) Error() string { return string(e) }
