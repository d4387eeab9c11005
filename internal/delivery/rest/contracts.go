package rest

import (
	"context"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
)

type QuestionService interface {
	Add(ctx context.Context, text string, options [entities.NumOptions]string, correct *int) (entities.Question, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []entities.Question
	Get(ctx context.Context, id int64) (entities.Question, error)
	Count(ctx context.Context) int
}

// QuizService runs test sessions keyed by session id.
type QuizService interface {
	Start(ctx context.Context, id string) (service.SessionView, error)
	Restart(ctx context.Context, id string) (service.SessionView, error)
	Select(ctx context.Context, id string, option int) (service.SessionView, error)
	Next(ctx context.Context, id string) (service.SessionView, error)
	Previous(ctx context.Context, id string) (service.SessionView, error)
	Submit(ctx context.Context, id string) (service.SessionView, error)
	Reset(ctx context.Context, id string) (service.SessionView, error)
	View(ctx context.Context, id string) (service.SessionView, error)
	Discard(ctx context.Context, id string)
}
