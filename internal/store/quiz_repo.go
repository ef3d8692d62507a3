package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizzer/internal/quiz"
)

const quizzesTable = "quizzes"

// builder emits SQLite-flavoured statements.
var builder = entsql.Dialect(dialect.SQLite)

// QuizRepo implements quiz.Repository on SQLite.
type QuizRepo struct {
	db *sql.DB
}

var _ quiz.Repository = (*QuizRepo)(nil)

func (r *QuizRepo) FindAll(ctx context.Context) ([]quiz.Quiz, error) {
	query, args := builder.Select("id", "question", "answer").
		From(builder.Table(quizzesTable)).
		OrderBy("id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var out []quiz.Quiz
	for rows.Next() {
		var q quiz.Quiz
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}
	return out, nil
}

// FindByID returns nil, nil when there is no quiz with that id.
func (r *QuizRepo) FindByID(ctx context.Context, id int) (*quiz.Quiz, error) {
	query, args := builder.Select("id", "question", "answer").
		From(builder.Table(quizzesTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var q quiz.Quiz
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Question, &q.Answer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query quiz %d: %w", id, err)
	}
	return &q, nil
}

func (r *QuizRepo) Create(ctx context.Context, question, answer string) (quiz.Quiz, error) {
	if err := r.validate(ctx, 0, question, answer); err != nil {
		return quiz.Quiz{}, err
	}

	now := time.Now().UnixMilli()
	query, args := builder.Insert(quizzesTable).
		Columns("question", "answer", "created_at", "updated_at").
		Values(question, answer, now, now).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("insert quiz: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("insert quiz id: %w", err)
	}
	return quiz.Quiz{ID: int(id), Question: question, Answer: answer}, nil
}

func (r *QuizRepo) Update(ctx context.Context, id int, question, answer string) (quiz.Quiz, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if existing == nil {
		return quiz.Quiz{}, &quiz.NotFoundError{ID: id}
	}
	if err := r.validate(ctx, id, question, answer); err != nil {
		return quiz.Quiz{}, err
	}

	query, args := builder.Update(quizzesTable).
		Set("question", question).
		Set("answer", answer).
		Set("updated_at", time.Now().UnixMilli()).
		Where(entsql.EQ("id", id)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return quiz.Quiz{}, fmt.Errorf("update quiz %d: %w", id, err)
	}
	return quiz.Quiz{ID: id, Question: question, Answer: answer}, nil
}

func (r *QuizRepo) Delete(ctx context.Context, id int) error {
	query, args := builder.Delete(quizzesTable).
		Where(entsql.EQ("id", id)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete quiz %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quiz %d: %w", id, err)
	}
	if n == 0 {
		return &quiz.NotFoundError{ID: id}
	}
	return nil
}

// Count returns the number of stored quizzes.
func (r *QuizRepo) Count(ctx context.Context) (int, error) {
	query, args := builder.Select(entsql.Count("*")).
		From(builder.Table(quizzesTable)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return n, nil
}

// validate applies the field rules and the question uniqueness rule.
// selfID is excluded from the uniqueness check; pass 0 on create.
func (r *QuizRepo) validate(ctx context.Context, selfID int, question, answer string) error {
	violations := quiz.Validate(question, answer)

	if strings.TrimSpace(question) != "" {
		query, args := builder.Select(entsql.Count("*")).
			From(builder.Table(quizzesTable)).
			Where(entsql.And(
				entsql.EQ("question", question),
				entsql.NEQ("id", selfID),
			)).
			Query()

		var dup int
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&dup); err != nil {
			return fmt.Errorf("check duplicate question: %w", err)
		}
		if dup > 0 {
			violations = append(violations, quiz.MsgDuplicateQuestion)
		}
	}

	if len(violations) > 0 {
		return &quiz.ValidationError{Violations: violations}
	}
	return nil
}
