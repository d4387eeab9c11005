package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot       Bot
	logger    *zap.Logger
	questions QuestionService
	quiz      QuizService
	chats     ChatStorage
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	questions QuestionService,
	quiz QuizService,
	chats ChatStorage,
) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		questions: questions,
		quiz:      quiz,
		chats:     chats,
	}
}

// Commands returns the bot command list shown by Telegram clients.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Choose your role"},
		{Command: "add", Description: "Add a question"},
		{Command: "list", Description: "List questions"},
		{Command: "test", Description: "Take the test"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart())(ctx, chatID)

		case "add":
			_ = h.withErrorHandling(h.handleAdd(update.Message.CommandArguments()))(ctx, chatID)

		case "list":
			_ = h.withErrorHandling(h.handleList())(ctx, chatID)

		case "test":
			_ = h.withErrorHandling(h.handleTakerMenu())(ctx, chatID)

		case "help":
			_ = h.withErrorHandling(h.handleHelp())(ctx, chatID)

		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if h.chats.Get(chatID).AwaitingQuestion {
		_ = h.withErrorHandling(h.handleDraft(update.Message.Text))(ctx, chatID)
		return
	}

	_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newPlainMessage(chatID, err)
	_ = h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// answerCallback removes the client's loading indicator, optionally with a toast.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
