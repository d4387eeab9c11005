package rest

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

var errInvalidSessionID = errors.New("invalid session id")

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error           string               `json:"error"`
	Field           string               `json:"field,omitempty"`
	FirstUnanswered *int                 `json:"firstUnanswered,omitempty"`
	Session         *service.SessionView `json:"session,omitempty"`
}

// writeError maps domain errors onto status codes. Unknown errors are logged
// and reported as 500 without details.
func writeError(c echo.Context, logger *zap.Logger, err error) error {
	var (
		validation  *entities.ValidationError
		option      *entities.InvalidOptionError
		incomplete  *entities.IncompleteAnswersError
		invalidBody validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Field: validation.Field})
	case errors.As(err, &invalidBody):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Field: invalidBody[0].Field()})
	case errors.As(err, &option):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &incomplete):
		idx := incomplete.FirstUnansweredIndex
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), FirstUnanswered: &idx})
	case errors.Is(err, entities.ErrEmptyQuestionSet), errors.Is(err, entities.ErrSessionNotInProgress):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrSessionNotFound),
		errors.Is(err, repository.ErrQuestionNotFound),
		errors.Is(err, errInvalidSessionID):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}

	logger.Error("request failed",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
