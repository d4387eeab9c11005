package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/mcq-exam-bot/internal/infra/postgres"
	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
)

const createQuestionSetsTable = `
	CREATE TABLE IF NOT EXISTS question_sets (
		name       TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// QuestionSetStore keeps the serialized question set in one row of the
// question_sets table, keyed by record name.
type QuestionSetStore struct {
	db   postgres.DBTX
	name string
}

// NewQuestionSetStore creates a store for the record with the given name.
func NewQuestionSetStore(db postgres.DBTX, name string) *QuestionSetStore {
	return &QuestionSetStore{db: db, name: name}
}

// EnsureSchema creates the question_sets table if it does not exist.
func (s *QuestionSetStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createQuestionSetsTable); err != nil {
		return fmt.Errorf("create question_sets: %w", err)
	}
	return nil
}

// Load returns the stored payload.
func (s *QuestionSetStore) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT payload FROM question_sets WHERE name = $1`

	var payload []byte
	err := s.db.QueryRow(ctx, query, s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get question set: %w", err)
	}

	return payload, nil
}

// Save overwrites the stored payload.
func (s *QuestionSetStore) Save(ctx context.Context, payload []byte) error {
	query := `
		INSERT INTO question_sets (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.Exec(ctx, query, s.name, payload); err != nil {
		return fmt.Errorf("save question set: %w", err)
	}

	return nil
}
