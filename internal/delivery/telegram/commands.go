package telegram

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

// handleStart resets the chat and asks for a role.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.chats.Modify(chatID, func(s *storage.ChatState) {
			s.Role = storage.RoleNone
			s.AwaitingQuestion = false
		})

		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildRoleKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, msgHelp))
	}
}

// handleAdd adds the question given as command arguments, or waits for it
// in the next message.
func (h *Handler) handleAdd(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if strings.TrimSpace(args) != "" {
			h.chats.Modify(chatID, func(s *storage.ChatState) {
				s.Role = storage.RoleAuthor
			})
			return h.handleDraft(args)(ctx, chatID)
		}

		return h.promptDraft(chatID)
	}
}

func (h *Handler) promptDraft(chatID int64) error {
	h.chats.Modify(chatID, func(s *storage.ChatState) {
		s.Role = storage.RoleAuthor
		s.AwaitingQuestion = true
	})

	msg := newHTMLMessage(chatID, msgAddPrompt)
	msg.ReplyMarkup = buildCancelKeyboard()
	return h.send(msg)
}

// handleDraft parses and stores a question. On a rejected draft the chat
// keeps waiting for a corrected one.
func (h *Handler) handleDraft(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		draft, err := parseQuestionDraft(text)
		if err != nil {
			return err
		}

		q, err := h.questions.Add(ctx, draft.Text, draft.Options, draft.Correct)
		if err != nil {
			return err
		}

		h.chats.Modify(chatID, func(s *storage.ChatState) {
			s.AwaitingQuestion = false
		})

		h.logger.Debug("question added from chat",
			zap.Int64("chat_id", chatID),
			zap.Int64("question_id", q.ID),
		)

		if err := h.send(newPlainMessage(chatID, msgQuestionAdded)); err != nil {
			return err
		}
		return h.sendAuthorMenu(ctx, chatID)
	}
}

// handleList sends every question as its own card with a delete button.
func (h *Handler) handleList() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.chats.Modify(chatID, func(s *storage.ChatState) {
			s.Role = storage.RoleAuthor
		})

		questions := h.questions.List(ctx)
		if len(questions) == 0 {
			if err := h.send(newPlainMessage(chatID, msgNoQuestionsYet)); err != nil {
				return err
			}
		}

		for _, q := range questions {
			msg := newHTMLMessage(chatID, renderQuestionCard(q))
			msg.ReplyMarkup = buildQuestionCardKeyboard(q.ID)
			if err := h.send(msg); err != nil {
				return err
			}
		}

		return h.sendAuthorMenu(ctx, chatID)
	}
}

// handleTakerMenu shows the number of questions and the start button.
func (h *Handler) handleTakerMenu() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.chats.Modify(chatID, func(s *storage.ChatState) {
			s.Role = storage.RoleTaker
			s.AwaitingQuestion = false
		})

		count := h.questions.Count(ctx)
		msg := newHTMLMessage(chatID, renderTakerMenu(count))
		msg.ReplyMarkup = buildTakerKeyboard(count)
		return h.send(msg)
	}
}

func (h *Handler) sendAuthorMenu(ctx context.Context, chatID int64) error {
	msg := newHTMLMessage(chatID, renderAuthorMenu(h.questions.Count(ctx)))
	msg.ReplyMarkup = buildAuthorKeyboard()
	return h.send(msg)
}
