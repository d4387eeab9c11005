package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler errors. Errors the user can act on are
// answered with a corrective message, everything else with msgInternalError.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		if text, ok := userMessage(err); ok {
			h.logger.Debug("rejected request",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, text)
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}

// userMessage translates domain errors into prompts.
func userMessage(err error) (string, bool) {
	var (
		validation *entities.ValidationError
		incomplete *entities.IncompleteAnswersError
		option     *entities.InvalidOptionError
	)

	switch {
	case errors.As(err, &validation):
		return validationMessage(validation), true
	case errors.As(err, &incomplete):
		return fmt.Sprintf(msgAnswerBeforeSubmit, incomplete.FirstUnansweredIndex+1), true
	case errors.As(err, &option):
		return msgInvalidOption, true
	case errors.Is(err, errDraftFormat):
		return msgDraftFormat, true
	case errors.Is(err, errDraftSeveralCorrect):
		return msgDraftSeveralCorrect, true
	case errors.Is(err, entities.ErrEmptyQuestionSet):
		return msgNoQuestions, true
	case errors.Is(err, entities.ErrSessionNotInProgress), errors.Is(err, storage.ErrSessionNotFound):
		return msgNoActiveTest, true
	case errors.Is(err, repository.ErrQuestionNotFound):
		return msgQuestionNotFound, true
	case errors.Is(err, errMalformedCallback):
		return msgOutdatedButton, true
	}

	return "", false
}
