package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

// callbackFunc handles one action. The returned text is shown as a toast.
type callbackFunc func(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	cd := decodeCallback(cb.Data)

	var fn callbackFunc
	switch cd.Action {
	case actionRole:
		fn = h.roleCallback
	case actionSwitch:
		fn = h.switchCallback
	case actionAdd:
		fn = h.addCallback
	case actionCancel:
		fn = h.cancelCallback
	case actionList:
		fn = h.listCallback
	case actionDelete:
		fn = h.deleteCallback
	case actionDelConf:
		fn = h.deleteConfirmCallback
	case actionDelCancel:
		fn = h.deleteCancelCallback
	case actionStart:
		fn = h.startCallback
	case actionOption:
		fn = h.optionCallback
	case actionPrevious:
		fn = h.previousCallback
	case actionNext:
		fn = h.nextCallback
	case actionSubmit:
		fn = h.submitCallback
	case actionRetake:
		fn = h.retakeCallback
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, msgOutdatedButton)
		return
	}

	chatID := cb.Message.Chat.ID
	toast, err := fn(ctx, chatID, cb.Message.MessageID, cd)
	if err != nil {
		if text, ok := userMessage(err); ok {
			toast = text
		} else {
			h.logger.Error("callback error",
				zap.Int64("chat_id", chatID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			toast = msgInternalError
		}
	}

	h.answerCallback(cb.ID, toast)
}

func (h *Handler) roleCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	if len(cd.Params) != 1 {
		return "", errMalformedCallback
	}

	role := storage.Role(cd.Params[0])
	if role != storage.RoleAuthor && role != storage.RoleTaker {
		return "", errMalformedCallback
	}

	h.chats.Modify(chatID, func(s *storage.ChatState) {
		s.Role = role
		s.AwaitingQuestion = false
	})

	count := h.questions.Count(ctx)
	if role == storage.RoleAuthor {
		kb := buildAuthorKeyboard()
		_ = h.send(newEdit(chatID, msgID, renderAuthorMenu(count), &kb))
	} else {
		kb := buildTakerKeyboard(count)
		_ = h.send(newEdit(chatID, msgID, renderTakerMenu(count), &kb))
	}

	return "", nil
}

func (h *Handler) switchCallback(_ context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	h.chats.Modify(chatID, func(s *storage.ChatState) {
		s.Role = storage.RoleNone
		s.AwaitingQuestion = false
	})

	kb := buildRoleKeyboard()
	_ = h.send(newEdit(chatID, msgID, msgWelcome, &kb))
	return "", nil
}

func (h *Handler) addCallback(_ context.Context, chatID int64, _ int, _ callbackData) (string, error) {
	return "", h.promptDraft(chatID)
}

func (h *Handler) cancelCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	h.chats.Modify(chatID, func(s *storage.ChatState) {
		s.AwaitingQuestion = false
	})

	_ = h.send(newEdit(chatID, msgID, msgCancelled, nil))
	return "", h.sendAuthorMenu(ctx, chatID)
}

func (h *Handler) listCallback(ctx context.Context, chatID int64, _ int, _ callbackData) (string, error) {
	return "", h.handleList()(ctx, chatID)
}

// deleteCallback asks for confirmation on the question card itself.
func (h *Handler) deleteCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	id, err := cd.int64Param(0)
	if err != nil {
		return "", err
	}

	q, err := h.questions.Get(ctx, id)
	if err != nil {
		return "", err
	}

	kb := buildDeleteConfirmKeyboard(id)
	_ = h.send(newEdit(chatID, msgID, renderQuestionCard(q)+"\n\n<b>"+msgDeleteConfirm+"</b>", &kb))
	return "", nil
}

func (h *Handler) deleteConfirmCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	id, err := cd.int64Param(0)
	if err != nil {
		return "", err
	}

	if err := h.questions.Delete(ctx, id); err != nil {
		return "", err
	}

	_ = h.send(newEdit(chatID, msgID, msgDeleted, nil))
	return msgDeleted, nil
}

func (h *Handler) deleteCancelCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	id, err := cd.int64Param(0)
	if err != nil {
		return "", err
	}

	q, err := h.questions.Get(ctx, id)
	if err != nil {
		return "", err
	}

	kb := buildQuestionCardKeyboard(id)
	_ = h.send(newEdit(chatID, msgID, renderQuestionCard(q), &kb))
	return "", nil
}

func (h *Handler) startCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	view, err := h.quiz.Start(ctx, chatID)
	if err != nil {
		return "", err
	}

	h.chats.Modify(chatID, func(s *storage.ChatState) {
		s.Role = storage.RoleTaker
	})

	h.editQuestion(chatID, msgID, view)
	return "", nil
}

// optionCallback answers the question the keyboard was built for. Buttons
// of a question that is no longer shown are rejected.
func (h *Handler) optionCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	index, err := cd.intParam(0)
	if err != nil {
		return "", err
	}
	option, err := cd.intParam(1)
	if err != nil {
		return "", err
	}

	current, err := h.quiz.View(ctx, chatID)
	if err != nil {
		return "", err
	}
	if current.Status != entities.StatusInProgress || current.Index != index {
		return msgOutdatedButton, nil
	}
	if current.Answer == option {
		return "", nil
	}

	view, err := h.quiz.Select(ctx, chatID, option)
	if err != nil {
		return "", err
	}

	h.editQuestion(chatID, msgID, view)
	return "", nil
}

func (h *Handler) previousCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	_, _, err := h.move(ctx, chatID, msgID, h.quiz.Previous)
	return "", err
}

func (h *Handler) nextCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	before, moved, err := h.move(ctx, chatID, msgID, h.quiz.Next)
	if err != nil {
		return "", err
	}
	if moved {
		return "", nil
	}
	if before.Answer == entities.Unanswered {
		return msgAnswerFirst, nil
	}
	// Answered yet stuck: the button belongs to an older keyboard.
	return msgOutdatedButton, nil
}

// move runs a navigation step and redraws the question when it changed.
// It returns the view as it was before the step.
func (h *Handler) move(
	ctx context.Context,
	chatID int64,
	msgID int,
	step func(context.Context, int64) (service.SessionView, error),
) (service.SessionView, bool, error) {
	before, err := h.quiz.View(ctx, chatID)
	if err != nil {
		return before, false, err
	}
	if before.Status != entities.StatusInProgress {
		return before, false, entities.ErrSessionNotInProgress
	}

	view, err := step(ctx, chatID)
	if err != nil {
		return before, false, err
	}
	if view.Index == before.Index {
		return before, false, nil
	}

	h.editQuestion(chatID, msgID, view)
	return before, true, nil
}

// submitCallback scores the test, or moves to the first unanswered question.
func (h *Handler) submitCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	view, err := h.quiz.Submit(ctx, chatID)

	var incomplete *entities.IncompleteAnswersError
	if errors.As(err, &incomplete) {
		h.editQuestion(chatID, msgID, view)
		return "", err
	}
	if err != nil {
		return "", err
	}

	h.sendResult(chatID, msgID, view.Report)
	return "", nil
}

func (h *Handler) retakeCallback(ctx context.Context, chatID int64, msgID int, _ callbackData) (string, error) {
	if _, err := h.quiz.Retake(ctx, chatID); err != nil {
		return "", err
	}

	count := h.questions.Count(ctx)
	kb := buildTakerKeyboard(count)
	_ = h.send(newEdit(chatID, msgID, renderTakerMenu(count), &kb))
	return "", nil
}

func (h *Handler) editQuestion(chatID int64, msgID int, view service.SessionView) {
	kb := buildQuestionKeyboard(view)
	_ = h.send(newEdit(chatID, msgID, renderQuestion(view), &kb))
}

// sendResult replaces the question message with the report. Reports longer
// than one message continue in new messages; the keyboard goes on the last.
func (h *Handler) sendResult(chatID int64, msgID int, report *entities.ScoreReport) {
	chunks := splitMessage(renderResult(report), maxMessageLength)
	kb := buildResultKeyboard()

	for i, chunk := range chunks {
		var markup *tgbotapi.InlineKeyboardMarkup
		if i == len(chunks)-1 {
			markup = &kb
		}

		if i == 0 {
			_ = h.send(newEdit(chatID, msgID, chunk, markup))
			continue
		}

		msg := newHTMLMessage(chatID, chunk)
		if markup != nil {
			msg.ReplyMarkup = *markup
		}
		_ = h.send(msg)
	}
}
