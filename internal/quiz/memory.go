package quiz

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepository is a Repository kept in process memory. It applies the
// same validation rules as the SQLite store.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int
	quizzes map[int]Quiz
}

// NewMemoryRepository creates a repository holding the given question and
// answer pairs, numbered from 1 in order.
func NewMemoryRepository(pairs ...[2]string) *MemoryRepository {
	r := &MemoryRepository{nextID: 1, quizzes: make(map[int]Quiz)}
	for _, p := range pairs {
		r.quizzes[r.nextID] = Quiz{ID: r.nextID, Question: p[0], Answer: p[1]}
		r.nextID++
	}
	return r
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id int) (*Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *MemoryRepository) Create(_ context.Context, question, answer string) (Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(0, question, answer); err != nil {
		return Quiz{}, err
	}
	q := Quiz{ID: r.nextID, Question: question, Answer: answer}
	r.quizzes[q.ID] = q
	r.nextID++
	return q, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int, question, answer string) (Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quizzes[id]; !ok {
		return Quiz{}, &NotFoundError{ID: id}
	}
	if err := r.validate(id, question, answer); err != nil {
		return Quiz{}, err
	}
	q := Quiz{ID: id, Question: question, Answer: answer}
	r.quizzes[id] = q
	return q, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quizzes[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.quizzes, id)
	return nil
}

// validate must be called with r.mu held. selfID is skipped in the
// uniqueness check so an update may keep its own question.
func (r *MemoryRepository) validate(selfID int, question, answer string) error {
	violations := Validate(question, answer)
	if strings.TrimSpace(question) != "" {
		for id, q := range r.quizzes {
			if id != selfID && q.Question == question {
				violations = append(violations, MsgDuplicateQuestion)
				break
			}
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
