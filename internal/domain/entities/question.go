package entities

import (
	"fmt"
	"strings"
)

// NumOptions is the number of answer options every question carries.
const NumOptions = 4

// Question is a single multiple-choice quiz item.
// Questions are created by an author and never mutated afterwards.
type Question struct {
	ID            int64              `json:"id"`            // unique, time-derived identifier
	Text          string             `json:"question"`      // question prompt
	Options       [NumOptions]string `json:"options"`       // answer options in display order
	CorrectOption int                `json:"correctAnswer"` // index into Options
}

// NewQuestion builds a validated question without an ID.
// A nil correct index means the author did not choose one.
func NewQuestion(text string, options [NumOptions]string, correct *int) (Question, error) {
	q := Question{Text: strings.TrimSpace(text)}
	for i, opt := range options {
		q.Options[i] = strings.TrimSpace(opt)
	}

	if correct == nil {
		if err := q.validateFields(); err != nil {
			return Question{}, err
		}
		return Question{}, &ValidationError{Field: FieldCorrectAnswer, Reason: "must be selected"}
	}
	q.CorrectOption = *correct

	if err := q.Validate(); err != nil {
		return Question{}, err
	}

	return q, nil
}

// Validate checks the question invariants: non-empty text, four non-empty
// options and a correct index within range.
func (q Question) Validate() error {
	if err := q.validateFields(); err != nil {
		return err
	}

	if q.CorrectOption < 0 || q.CorrectOption >= NumOptions {
		return &ValidationError{
			Field:  FieldCorrectAnswer,
			Reason: fmt.Sprintf("must be between 0 and %d", NumOptions-1),
		}
	}

	return nil
}

func (q Question) validateFields() error {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Field: FieldQuestion, Reason: "must not be empty"}
	}

	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Field: OptionField(i), Reason: "must not be empty"}
		}
	}

	return nil
}

// IsCorrect reports whether option is the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectOption
}

// OptionLabel returns the letter shown next to option i (A, B, C, D).
func OptionLabel(i int) string {
	return string(rune('A' + i))
}
