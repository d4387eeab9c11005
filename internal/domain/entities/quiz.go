package entities

import (
	"time"
)

// Unanswered marks an answer slot the taker has not filled yet.
const Unanswered = -1

// SessionStatus is the lifecycle state of a test attempt.
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
)

// TestSession tracks a single test attempt: a snapshot of the questions,
// the answers chosen so far and the navigation position.
// It is not safe for concurrent use.
type TestSession struct {
	questions []Question
	answers   []int
	current   int
	status    SessionStatus
	report    *ScoreReport
	startedAt time.Time
}

// NewTestSession creates a session in the NotStarted state.
func NewTestSession() *TestSession {
	return &TestSession{status: StatusNotStarted}
}

// Start begins a new attempt over a copy of questions.
func (s *TestSession) Start(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuestionSet
	}

	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)

	s.answers = make([]int, len(questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}

	s.current = 0
	s.status = StatusInProgress
	s.report = nil
	s.startedAt = time.Now()

	return nil
}

// SelectAnswer records option as the answer to the current question,
// replacing any previous choice.
func (s *TestSession) SelectAnswer(option int) error {
	if s.status != StatusInProgress {
		return ErrSessionNotInProgress
	}
	if option < 0 || option >= NumOptions {
		return &InvalidOptionError{Index: option}
	}

	s.answers[s.current] = option
	return nil
}

// GoToPrevious moves one question back. It does nothing at the first question.
func (s *TestSession) GoToPrevious() bool {
	if !s.CanGoPrevious() {
		return false
	}
	s.current--
	return true
}

// GoToNext moves one question forward. The current question must be
// answered and must not be the last one, otherwise nothing happens.
func (s *TestSession) GoToNext() bool {
	if !s.CanGoNext() {
		return false
	}
	s.current++
	return true
}

// GoTo jumps to question i. Jumping past the first unanswered question is
// not allowed, so the forward gate of GoToNext still holds.
func (s *TestSession) GoTo(i int) bool {
	if s.status != StatusInProgress || i < 0 || i >= len(s.questions) {
		return false
	}
	if first := s.FirstUnanswered(); first >= 0 && i > first {
		return false
	}
	s.current = i
	return true
}

// Submit scores the attempt. When a question is still unanswered it returns
// an IncompleteAnswersError and leaves the session unchanged.
func (s *TestSession) Submit() (*ScoreReport, error) {
	if s.status != StatusInProgress {
		return nil, ErrSessionNotInProgress
	}

	if first := s.FirstUnanswered(); first >= 0 {
		return nil, &IncompleteAnswersError{FirstUnansweredIndex: first}
	}

	report := newScoreReport(s.questions, s.answers)
	report.StartedAt = s.startedAt
	report.CompletedAt = time.Now()

	s.report = report
	s.status = StatusCompleted

	return report, nil
}

// Retake discards the attempt and returns to NotStarted.
// Calling it again without Start is a no-op.
func (s *TestSession) Retake() {
	s.questions = nil
	s.answers = nil
	s.current = 0
	s.status = StatusNotStarted
	s.report = nil
	s.startedAt = time.Time{}
}

// Status returns the lifecycle state.
func (s *TestSession) Status() SessionStatus { return s.status }

// Index returns the zero-based position of the current question.
func (s *TestSession) Index() int { return s.current }

// Total returns the number of questions in the snapshot.
func (s *TestSession) Total() int { return len(s.questions) }

// Current returns the current question and the chosen option
// (Unanswered if none). ok is false when no attempt is in progress.
func (s *TestSession) Current() (q Question, answer int, ok bool) {
	if s.status != StatusInProgress {
		return Question{}, Unanswered, false
	}
	return s.questions[s.current], s.answers[s.current], true
}

// Answer returns the option chosen for question i, or Unanswered.
func (s *TestSession) Answer(i int) int {
	if i < 0 || i >= len(s.answers) {
		return Unanswered
	}
	return s.answers[i]
}

// Answers returns a copy of all answer slots.
func (s *TestSession) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// FirstUnanswered returns the index of the first unanswered question or -1.
func (s *TestSession) FirstUnanswered() int {
	for i, a := range s.answers {
		if a == Unanswered {
			return i
		}
	}
	return -1
}

func (s *TestSession) CanGoPrevious() bool {
	return s.status == StatusInProgress && s.current > 0
}

func (s *TestSession) CanGoNext() bool {
	return s.status == StatusInProgress &&
		s.current < len(s.questions)-1 &&
		s.answers[s.current] != Unanswered
}

// IsLast reports whether the current question is the last one.
func (s *TestSession) IsLast() bool {
	return s.current == len(s.questions)-1
}

// StartedAt returns when the current attempt started. It is zero before Start.
func (s *TestSession) StartedAt() time.Time { return s.startedAt }

// Report returns the score of the completed attempt, or nil.
func (s *TestSession) Report() *ScoreReport {
	return s.report
}
