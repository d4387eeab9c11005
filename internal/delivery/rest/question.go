package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

// QuestionHandler serves the author side of the API.
type QuestionHandler struct {
	questions QuestionService
	logger    *zap.Logger
}

func NewQuestionHandler(questions QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, logger: logger}
}

// Register registers the question routes.
func (h *QuestionHandler) Register(e *echo.Echo) {
	g := e.Group("/api/questions")
	g.GET("", h.List)
	g.GET("/count", h.Count)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.DELETE("/:id", h.Delete)
}

// CreateQuestionRequest is a new question. Field contents are checked by the
// domain; the request only has to carry four options.
type CreateQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options" validate:"len=4"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

func (h *QuestionHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.questions.List(c.Request().Context()))
}

func (h *QuestionHandler) Count(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"count": h.questions.Count(c.Request().Context()),
	})
}

func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question id")
	}

	q, err := h.questions.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *QuestionHandler) Create(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, h.logger, err)
	}

	var options [entities.NumOptions]string
	copy(options[:], req.Options)

	q, err := h.questions.Add(c.Request().Context(), req.Question, options, req.CorrectAnswer)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, q)
}

// Delete removes a question. Unknown ids succeed as well.
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question id")
	}

	if err := h.questions.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
