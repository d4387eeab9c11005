package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

// QuestionView is a question as shown to a taker, without the correct option.
type QuestionView struct {
	ID      int64                       `json:"id"`
	Text    string                      `json:"question"`
	Options [entities.NumOptions]string `json:"options"`
}

// SessionView is a read-only snapshot of a test session for rendering.
type SessionView struct {
	Status        entities.SessionStatus `json:"status"`
	Index         int                    `json:"index"`
	Total         int                    `json:"total"`
	Question      *QuestionView          `json:"question,omitempty"`
	Answer        int                    `json:"answer"`
	Answered      int                    `json:"answered"`
	CanGoPrevious bool                   `json:"canGoPrevious"`
	CanGoNext     bool                   `json:"canGoNext"`
	IsLast        bool                   `json:"isLast"`
	Report        *entities.ScoreReport  `json:"report,omitempty"`
}

func newSessionView(s *entities.TestSession) SessionView {
	view := SessionView{
		Status: s.Status(),
		Index:  s.Index(),
		Total:  s.Total(),
		Answer: entities.Unanswered,
		Report: s.Report(),
	}

	if q, answer, ok := s.Current(); ok {
		view.Question = &QuestionView{ID: q.ID, Text: q.Text, Options: q.Options}
		view.Answer = answer
		view.CanGoPrevious = s.CanGoPrevious()
		view.CanGoNext = s.CanGoNext()
		view.IsLast = s.IsLast()
	}

	for _, a := range s.Answers() {
		if a != entities.Unanswered {
			view.Answered++
		}
	}

	return view
}

// QuizService implements the taker side. Each key owns one test session;
// every operation runs atomically on that session.
type QuizService[K comparable] struct {
	questions QuestionSource
	sessions  SessionStorage[K]
	logger    *zap.Logger
}

func NewQuizService[K comparable](
	questions QuestionSource,
	sessions SessionStorage[K],
	logger *zap.Logger,
) *QuizService[K] {
	return &QuizService[K]{
		questions: questions,
		sessions:  sessions,
		logger:    logger,
	}
}

// Start begins a new attempt over the current question set.
func (s *QuizService[K]) Start(_ context.Context, key K) (SessionView, error) {
	return s.start(key, s.sessions.Update)
}

// Restart begins a new attempt on a session that already exists.
// It returns storage.ErrSessionNotFound for unknown keys.
func (s *QuizService[K]) Restart(_ context.Context, key K) (SessionView, error) {
	return s.start(key, s.sessions.View)
}

func (s *QuizService[K]) start(
	key K,
	access func(K, func(*entities.TestSession) error) error,
) (SessionView, error) {
	questions := s.questions.List()

	var view SessionView
	err := access(key, func(ts *entities.TestSession) error {
		if err := ts.Start(questions); err != nil {
			return err
		}
		view = newSessionView(ts)
		return nil
	})
	if err != nil {
		return SessionView{}, err
	}

	s.logger.Info("test started",
		zap.Any("session", key),
		zap.Int("questions", len(questions)),
	)

	return view, nil
}

// Select answers the current question.
func (s *QuizService[K]) Select(_ context.Context, key K, option int) (SessionView, error) {
	return s.step(key, func(ts *entities.TestSession) error {
		return ts.SelectAnswer(option)
	})
}

// Next moves forward when the current question is answered.
func (s *QuizService[K]) Next(_ context.Context, key K) (SessionView, error) {
	return s.step(key, func(ts *entities.TestSession) error {
		ts.GoToNext()
		return nil
	})
}

// Previous moves one question back.
func (s *QuizService[K]) Previous(_ context.Context, key K) (SessionView, error) {
	return s.step(key, func(ts *entities.TestSession) error {
		ts.GoToPrevious()
		return nil
	})
}

// Submit scores the attempt. If a question is unanswered the session is moved
// to it and the IncompleteAnswersError is returned together with the new view.
func (s *QuizService[K]) Submit(_ context.Context, key K) (SessionView, error) {
	var (
		view   SessionView
		report *entities.ScoreReport
	)

	err := s.sessions.View(key, func(ts *entities.TestSession) error {
		var err error
		report, err = ts.Submit()

		var incomplete *entities.IncompleteAnswersError
		if errors.As(err, &incomplete) {
			ts.GoTo(incomplete.FirstUnansweredIndex)
		}

		view = newSessionView(ts)
		return err
	})
	if err != nil {
		return view, err
	}

	s.logger.Info("test submitted",
		zap.Any("session", key),
		zap.Int("correct", report.Correct),
		zap.Int("total", report.Total),
		zap.Int("percentage", report.Percentage),
	)

	return view, nil
}

// Retake discards the attempt. It is safe to call repeatedly.
func (s *QuizService[K]) Retake(_ context.Context, key K) (SessionView, error) {
	var view SessionView
	err := s.sessions.Update(key, func(ts *entities.TestSession) error {
		ts.Retake()
		view = newSessionView(ts)
		return nil
	})
	return view, err
}

// Reset is Retake for a session that must already exist.
func (s *QuizService[K]) Reset(_ context.Context, key K) (SessionView, error) {
	return s.step(key, func(ts *entities.TestSession) error {
		ts.Retake()
		return nil
	})
}

// View returns the current state of the session.
func (s *QuizService[K]) View(_ context.Context, key K) (SessionView, error) {
	return s.step(key, func(*entities.TestSession) error { return nil })
}

// Discard forgets the session entirely.
func (s *QuizService[K]) Discard(_ context.Context, key K) {
	s.sessions.Delete(key)
}

func (s *QuizService[K]) step(key K, fn func(*entities.TestSession) error) (SessionView, error) {
	var view SessionView
	err := s.sessions.View(key, func(ts *entities.TestSession) error {
		if err := fn(ts); err != nil {
			return err
		}
		view = newSessionView(ts)
		return nil
	})
	return view, err
}
