package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuestionSet is returned when a test is started without questions.
	ErrEmptyQuestionSet = errors.New("question set is empty")
	// ErrSessionNotInProgress is returned by operations that need an active attempt.
	ErrSessionNotInProgress = errors.New("test session is not in progress")
)

// Field names reported by ValidationError. They match the persisted JSON keys.
const (
	FieldQuestion      = "question"
	FieldOptions       = "options"
	FieldCorrectAnswer = "correctAnswer"
)

// OptionField returns the field name of the i-th option.
func OptionField(i int) string {
	return fmt.Sprintf("%s[%d]", FieldOptions, i)
}

// ValidationError reports a missing or malformed question field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IncompleteAnswersError is returned when a test is submitted with
// unanswered questions. FirstUnansweredIndex is zero-based.
type IncompleteAnswersError struct {
	FirstUnansweredIndex int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("question %d is not answered", e.FirstUnansweredIndex+1)
}

// InvalidOptionError is returned when an option index is outside [0, NumOptions).
type InvalidOptionError struct {
	Index int
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("option index %d out of range [0, %d]", e.Index, NumOptions-1)
}
