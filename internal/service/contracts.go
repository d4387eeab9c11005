package service

import (
	"context"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

type QuestionRepository interface {
	Add(ctx context.Context, text string, options [entities.NumOptions]string, correct *int) (entities.Question, error)
	Delete(ctx context.Context, id int64) error
	List() []entities.Question
	Get(id int64) (entities.Question, error)
	Count() int
}

// QuestionSource provides the questions a test is started with.
type QuestionSource interface {
	List() []entities.Question
}

// SessionStorage holds test sessions by key.
type SessionStorage[K comparable] interface {
	Update(key K, fn func(*entities.TestSession) error) error
	View(key K, fn func(*entities.TestSession) error) error
	Delete(key K)
}
