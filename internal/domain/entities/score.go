package entities

import (
	"math"
	"time"
)

// QuestionResult is the review line of a single question.
type QuestionResult struct {
	QuestionID    int64              `json:"questionId"`
	Text          string             `json:"question"`
	Options       [NumOptions]string `json:"options"`
	Chosen        int                `json:"chosen"`
	CorrectOption int                `json:"correctAnswer"`
	IsCorrect     bool               `json:"isCorrect"`
}

// ScoreReport summarizes a completed attempt.
type ScoreReport struct {
	Correct     int              `json:"correct"`
	Total       int              `json:"total"`
	Percentage  int              `json:"percentage"`
	Breakdown   []QuestionResult `json:"breakdown"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt time.Time        `json:"completedAt"`
}

// Duration is the time the attempt took, rounded to seconds.
func (r ScoreReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.Before(r.StartedAt) {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt).Round(time.Second)
}

func newScoreReport(questions []Question, answers []int) *ScoreReport {
	report := &ScoreReport{
		Total:     len(questions),
		Breakdown: make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		correct := q.IsCorrect(answers[i])
		if correct {
			report.Correct++
		}

		report.Breakdown = append(report.Breakdown, QuestionResult{
			QuestionID:    q.ID,
			Text:          q.Text,
			Options:       q.Options,
			Chosen:        answers[i],
			CorrectOption: q.CorrectOption,
			IsCorrect:     correct,
		})
	}

	if report.Total > 0 {
		report.Percentage = int(math.Round(float64(report.Correct) / float64(report.Total) * 100))
	}

	return report
}

// Verdict returns a short encouragement matching the percentage band.
func (r ScoreReport) Verdict() string {
	switch {
	case r.Percentage >= 90:
		return "Excellent work! 🎉"
	case r.Percentage >= 80:
		return "Great job! 👏"
	case r.Percentage >= 70:
		return "Good effort! 👍"
	case r.Percentage >= 60:
		return "Keep practicing! 📚"
	default:
		return "Don't give up, try again! 💪"
	}
}
