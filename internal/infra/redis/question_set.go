package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
)

// QuestionSetStore keeps the serialized question set under a single key.
// The key never expires.
type QuestionSetStore struct {
	client redis.Cmdable
	key    string
}

// NewQuestionSetStore creates a store for the given key.
func NewQuestionSetStore(client redis.Cmdable, key string) *QuestionSetStore {
	return &QuestionSetStore{client: client, key: key}
}

// Load returns the stored payload.
func (s *QuestionSetStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get question set: %w", err)
	}

	return data, nil
}

// Save overwrites the stored payload.
func (s *QuestionSetStore) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store question set: %w", err)
	}
	return nil
}
