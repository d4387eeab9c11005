package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

var (
	// ErrRecordNotFound is returned by a QuestionStore when nothing was saved yet.
	ErrRecordNotFound = errors.New("question set record not found")
	// ErrQuestionNotFound is returned by Get for an unknown id.
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionStore persists the serialized question set as a single named record.
// Save always overwrites the whole record.
type QuestionStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// questionRecord is the persisted shape of a question. Options are decoded
// as a slice so that a record with the wrong number of options is rejected
// instead of silently padded or truncated.
type questionRecord struct {
	ID            int64    `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

func (rec questionRecord) toQuestion() (entities.Question, error) {
	if len(rec.Options) != entities.NumOptions {
		return entities.Question{}, &entities.ValidationError{
			Field:  entities.FieldOptions,
			Reason: fmt.Sprintf("expected %d options, got %d", entities.NumOptions, len(rec.Options)),
		}
	}

	var options [entities.NumOptions]string
	copy(options[:], rec.Options)

	q, err := entities.NewQuestion(rec.Question, options, rec.CorrectAnswer)
	if err != nil {
		return entities.Question{}, err
	}
	q.ID = rec.ID

	return q, nil
}

// QuestionRepository is the single authority over the question collection.
// The collection is loaded once from the store and written back in full on
// every mutation.
type QuestionRepository struct {
	mu        sync.RWMutex
	store     QuestionStore
	logger    *zap.Logger
	questions []entities.Question
	lastID    int64
	now       func() time.Time
}

// Option configures a QuestionRepository.
type Option func(*QuestionRepository)

// WithClock overrides the time source used for question ids.
func WithClock(now func() time.Time) Option {
	return func(r *QuestionRepository) {
		r.now = now
	}
}

// NewQuestionRepository creates an empty repository backed by store.
// Call Load to read the persisted collection.
func NewQuestionRepository(store QuestionStore, logger *zap.Logger, opts ...Option) *QuestionRepository {
	r := &QuestionRepository{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the in-memory collection with the persisted one.
// A missing, unreadable or corrupt record results in an empty collection;
// invalid or duplicated entries are skipped.
func (r *QuestionRepository) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = nil
	r.lastID = 0

	payload, err := r.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			r.logger.Warn("failed to read question set, starting empty", zap.Error(err))
		}
		return
	}

	var records []questionRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		r.logger.Warn("corrupt question set, starting empty", zap.Error(err))
		return
	}

	seen := make(map[int64]struct{}, len(records))
	questions := make([]entities.Question, 0, len(records))
	for i, rec := range records {
		q, err := rec.toQuestion()
		if err != nil {
			r.logger.Warn("skipping invalid stored question",
				zap.Int("position", i),
				zap.Int64("question_id", rec.ID),
				zap.Error(err),
			)
			continue
		}

		if _, dup := seen[q.ID]; dup {
			r.logger.Warn("skipping duplicated question id", zap.Int64("question_id", q.ID))
			continue
		}
		seen[q.ID] = struct{}{}

		questions = append(questions, q)
		if q.ID > r.lastID {
			r.lastID = q.ID
		}
	}

	r.questions = questions
	r.logger.Info("question set loaded", zap.Int("count", len(questions)))
}

// Add validates and appends a new question, then persists the collection.
// A nil correct index is reported as a validation error.
func (r *QuestionRepository) Add(
	ctx context.Context,
	text string,
	options [entities.NumOptions]string,
	correct *int,
) (entities.Question, error) {
	q, err := entities.NewQuestion(text, options, correct)
	if err != nil {
		return entities.Question{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prevLastID := r.lastID
	q.ID = r.nextID()

	prev := r.questions
	next := make([]entities.Question, len(prev), len(prev)+1)
	copy(next, prev)
	next = append(next, q)

	if err := r.persist(ctx, next); err != nil {
		r.lastID = prevLastID
		return entities.Question{}, err
	}
	r.questions = next

	return q, nil
}

// Delete removes the question with the given id and persists the result.
// Deleting an unknown id is not an error.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]entities.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if q.ID != id {
			next = append(next, q)
		}
	}

	if err := r.persist(ctx, next); err != nil {
		return err
	}
	r.questions = next

	return nil
}

// List returns a copy of the collection in insertion order.
func (r *QuestionRepository) List() []entities.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// Get returns the question with the given id.
func (r *QuestionRepository) Get(id int64) (entities.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Question{}, ErrQuestionNotFound
}

// Count returns the number of questions.
func (r *QuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}

// nextID returns a millisecond timestamp, bumped past the last issued id
// when two questions are added within the same millisecond.
func (r *QuestionRepository) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *QuestionRepository) persist(ctx context.Context, questions []entities.Question) error {
	if questions == nil {
		questions = []entities.Question{}
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("marshal question set: %w", err)
	}

	if err := r.store.Save(ctx, payload); err != nil {
		return fmt.Errorf("save question set: %w", err)
	}

	return nil
}
