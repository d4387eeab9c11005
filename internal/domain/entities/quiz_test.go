package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions(correct ...int) []Question {
	qs := make([]Question, 0, len(correct))
	for i, c := range correct {
		qs = append(qs, Question{
			ID:            int64(i + 1),
			Text:          "question",
			Options:       [NumOptions]string{"a", "b", "c", "d"},
			CorrectOption: c,
		})
	}
	return qs
}

func TestStartEmptySet(t *testing.T) {
	s := NewTestSession()

	err := s.Start(nil)
	require.ErrorIs(t, err, ErrEmptyQuestionSet)
	assert.Equal(t, StatusNotStarted, s.Status())
}

func TestStartInitializesAttempt(t *testing.T) {
	s := NewTestSession()

	require.NoError(t, s.Start(sampleQuestions(0, 1, 2)))

	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, []int{Unanswered, Unanswered, Unanswered}, s.Answers())
}

func TestStartSnapshotIsIndependent(t *testing.T) {
	qs := sampleQuestions(0, 1)
	s := NewTestSession()
	require.NoError(t, s.Start(qs))

	qs[0].Text = "changed"
	qs[1].Text = "changed too"

	q, _, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "question", q.Text)
	assert.Equal(t, 2, s.Total())
}

func TestGoToNextRequiresAnswer(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 1, 2)))

	assert.False(t, s.GoToNext())
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.SelectAnswer(3))
	assert.True(t, s.GoToNext())
	assert.Equal(t, 1, s.Index())
}

func TestGoToNextStopsAtLast(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 1)))

	require.NoError(t, s.SelectAnswer(0))
	require.True(t, s.GoToNext())
	require.NoError(t, s.SelectAnswer(1))

	assert.True(t, s.IsLast())
	assert.False(t, s.GoToNext())
	assert.Equal(t, 1, s.Index())
}

func TestGoToPrevious(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 1)))

	assert.False(t, s.GoToPrevious())
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.SelectAnswer(2))
	require.True(t, s.GoToNext())
	assert.True(t, s.GoToPrevious())
	assert.Equal(t, 0, s.Index())

	// Going back keeps the answer and allows changing it.
	_, answer, _ := s.Current()
	assert.Equal(t, 2, answer)
	require.NoError(t, s.SelectAnswer(1))
	assert.Equal(t, 1, s.Answer(0))
}

func TestSelectAnswer(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		s := NewTestSession()
		assert.ErrorIs(t, s.SelectAnswer(0), ErrSessionNotInProgress)
	})

	t.Run("out of range", func(t *testing.T) {
		s := NewTestSession()
		require.NoError(t, s.Start(sampleQuestions(0)))

		for _, idx := range []int{-1, NumOptions} {
			err := s.SelectAnswer(idx)
			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, idx, invalid.Index)
		}
		assert.Equal(t, Unanswered, s.Answer(0))
	})

	t.Run("overwrite", func(t *testing.T) {
		s := NewTestSession()
		require.NoError(t, s.Start(sampleQuestions(0)))

		require.NoError(t, s.SelectAnswer(0))
		require.NoError(t, s.SelectAnswer(3))
		assert.Equal(t, 3, s.Answer(0))
	})
}

func TestSubmitIncomplete(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 1, 2)))

	require.NoError(t, s.SelectAnswer(0))
	require.True(t, s.GoToNext())
	require.NoError(t, s.SelectAnswer(1))
	require.True(t, s.GoToPrevious())

	report, err := s.Submit()
	require.Nil(t, report)

	var incomplete *IncompleteAnswersError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 2, incomplete.FirstUnansweredIndex)
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, 0, s.Index())
}

func TestSubmitScoring(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 2)))

	require.NoError(t, s.SelectAnswer(0))
	require.True(t, s.GoToNext())
	require.NoError(t, s.SelectAnswer(1))

	report, err := s.Submit()
	require.NoError(t, err)

	assert.Equal(t, 1, report.Correct)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 50, report.Percentage)
	require.Len(t, report.Breakdown, 2)
	assert.True(t, report.Breakdown[0].IsCorrect)
	assert.False(t, report.Breakdown[1].IsCorrect)
	assert.Equal(t, 1, report.Breakdown[1].Chosen)
	assert.Equal(t, 2, report.Breakdown[1].CorrectOption)

	assert.Equal(t, StatusCompleted, s.Status())
	assert.Same(t, report, s.Report())
	assert.Equal(t, s.StartedAt(), report.StartedAt)
	assert.False(t, report.CompletedAt.Before(report.StartedAt))

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSessionNotInProgress)
}

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		name    string
		correct []int
		answers []int
		want    int
	}{
		{"one of three", []int{0, 0, 0}, []int{0, 1, 1}, 33},
		{"two of three", []int{0, 0, 0}, []int{0, 0, 1}, 67},
		{"one of eight", []int{0, 0, 0, 0, 0, 0, 0, 0}, []int{0, 1, 1, 1, 1, 1, 1, 1}, 13},
		{"all", []int{3}, []int{3}, 100},
		{"none", []int{3}, []int{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newScoreReport(sampleQuestions(tt.correct...), tt.answers)
			assert.Equal(t, tt.want, report.Percentage)
		})
	}
}

func TestGoToCannotSkipUnanswered(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(0, 0, 0)))

	require.NoError(t, s.SelectAnswer(0))
	require.True(t, s.GoToNext())
	require.True(t, s.GoToPrevious())

	assert.False(t, s.GoTo(2))
	assert.True(t, s.GoTo(1))
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.GoTo(-1))
}

func TestRetakeIdempotent(t *testing.T) {
	s := NewTestSession()
	require.NoError(t, s.Start(sampleQuestions(1)))
	require.NoError(t, s.SelectAnswer(1))
	_, err := s.Submit()
	require.NoError(t, err)

	s.Retake()
	s.Retake()

	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Zero(t, s.Total())
	assert.Nil(t, s.Report())
	assert.Equal(t, -1, s.FirstUnanswered())
	assert.True(t, s.StartedAt().IsZero())

	require.NoError(t, s.Start(sampleQuestions(0, 1)))
	assert.Equal(t, 2, s.Total())
	assert.False(t, s.StartedAt().IsZero())
}

func TestReportDuration(t *testing.T) {
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		report ScoreReport
		want   time.Duration
	}{
		{"not timed", ScoreReport{}, 0},
		{"rounded", ScoreReport{StartedAt: start, CompletedAt: start.Add(95*time.Second + 600*time.Millisecond)}, 96 * time.Second},
		{"clock went back", ScoreReport{StartedAt: start, CompletedAt: start.Add(-time.Second)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Duration())
		})
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "Excellent work! 🎉"},
		{90, "Excellent work! 🎉"},
		{85, "Great job! 👏"},
		{70, "Good effort! 👍"},
		{60, "Keep practicing! 📚"},
		{59, "Don't give up, try again! 💪"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreReport{Percentage: tt.percentage}.Verdict())
	}
}
