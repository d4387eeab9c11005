package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuestionService interface {
	Add(ctx context.Context, text string, options [entities.NumOptions]string, correct *int) (entities.Question, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []entities.Question
	Get(ctx context.Context, id int64) (entities.Question, error)
	Count(ctx context.Context) int
}

// QuizService runs one test session per chat.
type QuizService interface {
	Start(ctx context.Context, chatID int64) (service.SessionView, error)
	Select(ctx context.Context, chatID int64, option int) (service.SessionView, error)
	Next(ctx context.Context, chatID int64) (service.SessionView, error)
	Previous(ctx context.Context, chatID int64) (service.SessionView, error)
	Submit(ctx context.Context, chatID int64) (service.SessionView, error)
	Retake(ctx context.Context, chatID int64) (service.SessionView, error)
	View(ctx context.Context, chatID int64) (service.SessionView, error)
}

type ChatStorage interface {
	Get(chatID int64) storage.ChatState
	Modify(chatID int64, fn func(*storage.ChatState)) storage.ChatState
}
