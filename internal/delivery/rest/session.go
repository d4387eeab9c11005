package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
)

// SessionHandler serves the taker side of the API. Each session is
// addressed by a server generated UUID.
type SessionHandler struct {
	quiz   QuizService
	logger *zap.Logger
}

func NewSessionHandler(quiz QuizService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{quiz: quiz, logger: logger}
}

// Register registers the session routes.
func (h *SessionHandler) Register(e *echo.Echo) {
	g := e.Group("/api/sessions")
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/start", h.step((QuizService).Restart))
	g.POST("/:id/answer", h.Answer)
	g.POST("/:id/next", h.step((QuizService).Next))
	g.POST("/:id/previous", h.step((QuizService).Previous))
	g.POST("/:id/submit", h.Submit)
	g.POST("/:id/retake", h.Retake)
}

// CreateSessionResponse is returned when a test starts.
type CreateSessionResponse struct {
	ID      string              `json:"id"`
	Session service.SessionView `json:"session"`
}

// AnswerRequest selects an option of the current question.
type AnswerRequest struct {
	Option *int `json:"option" validate:"required"`
}

// Create starts a test over the current question set.
func (h *SessionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	id := uuid.NewString()

	view, err := h.quiz.Start(ctx, id)
	if err != nil {
		h.quiz.Discard(ctx, id)
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, CreateSessionResponse{ID: id, Session: view})
}

func (h *SessionHandler) Get(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	view, err := h.quiz.View(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	h.quiz.Discard(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) Answer(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, h.logger, err)
	}

	view, err := h.quiz.Select(c.Request().Context(), id, *req.Option)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, view)
}

// step wraps an operation on an existing session. Navigation that cannot
// move returns the unchanged view.
func (h *SessionHandler) step(
	move func(QuizService, context.Context, string) (service.SessionView, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sessionID(c)
		if err != nil {
			return writeError(c, h.logger, err)
		}

		view, err := move(h.quiz, c.Request().Context(), id)
		if err != nil {
			return writeError(c, h.logger, err)
		}
		return c.JSON(http.StatusOK, view)
	}
}

// Submit returns the score report. With unanswered questions it answers 409
// and the session now points at the first of them.
func (h *SessionHandler) Submit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	view, err := h.quiz.Submit(c.Request().Context(), id)

	var incomplete *entities.IncompleteAnswersError
	if errors.As(err, &incomplete) {
		idx := incomplete.FirstUnansweredIndex
		return c.JSON(http.StatusConflict, errorResponse{
			Error:           err.Error(),
			FirstUnanswered: &idx,
			Session:         &view,
		})
	}
	if err != nil {
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, view.Report)
}

// Retake returns a known session to not_started. POST /:id/start then
// begins the next attempt.
func (h *SessionHandler) Retake(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	view, err := h.quiz.Reset(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, view)
}

func sessionID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", errInvalidSessionID
	}
	return id.String(), nil
}
