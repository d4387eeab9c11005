package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	cd := decodeCallback(buildOptionCallback(3, 2))
	assert.Equal(t, actionOption, cd.Action)

	index, err := cd.intParam(0)
	require.NoError(t, err)
	option, err := cd.intParam(1)
	require.NoError(t, err)
	assert.Equal(t, 3, index)
	assert.Equal(t, 2, option)

	_, err = cd.intParam(2)
	assert.ErrorIs(t, err, errMalformedCallback)

	cd = decodeCallback(buildDeleteConfirmCallback(1718000000123))
	assert.Equal(t, actionDelConf, cd.Action)
	id, err := cd.int64Param(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1718000000123), id)

	cd = decodeCallback(actionSubmit)
	assert.Equal(t, actionSubmit, cd.Action)
	assert.Empty(t, cd.Params)

	_, err = decodeCallback("del:abc").int64Param(0)
	assert.ErrorIs(t, err, errMalformedCallback)
}

func TestRenderQuestionCardEscapes(t *testing.T) {
	q := entities.Question{
		ID:            1,
		Text:          "Is 1 < 2?",
		Options:       [4]string{"yes", "no", "a & b", "<none>"},
		CorrectOption: 0,
	}

	text := renderQuestionCard(q)
	assert.Contains(t, text, "Is 1 &lt; 2?")
	assert.Contains(t, text, "✓ A. yes")
	assert.Contains(t, text, "C. a &amp; b")
	assert.Contains(t, text, "D. &lt;none&gt;")
	assert.Equal(t, 1, strings.Count(text, "✓"))
}

func TestRenderResult(t *testing.T) {
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	report := &entities.ScoreReport{
		StartedAt:   started,
		CompletedAt: started.Add(95 * time.Second),
		Correct:    1,
		Total:      2,
		Percentage: 50,
		Breakdown: []entities.QuestionResult{
			{Text: "first", Options: [4]string{"a", "b", "c", "d"}, Chosen: 1, CorrectOption: 1, IsCorrect: true},
			{Text: "second", Options: [4]string{"e", "f", "g", "h"}, Chosen: 3, CorrectOption: 0},
		},
	}

	text := renderResult(report)
	assert.Contains(t, text, "Score: <b>1/2</b>")
	assert.Contains(t, text, "Percentage: <b>50%</b>")
	assert.Contains(t, text, "Time: 1m35s")
	assert.Contains(t, text, report.Verdict())
	assert.Contains(t, text, "✓ B. b")
	assert.Contains(t, text, "✓ A. e")
	assert.Contains(t, text, "✗ D. h")
	assert.Equal(t, 1, strings.Count(text, "✗"))

	report.StartedAt = time.Time{}
	assert.NotContains(t, renderResult(report), "Time:")
}

func TestBuildQuestionKeyboard(t *testing.T) {
	view := service.SessionView{
		Status:        entities.StatusInProgress,
		Index:         1,
		Total:         2,
		Question:      &service.QuestionView{Text: "q", Options: [4]string{"a", "b", "c", "d"}},
		Answer:        2,
		CanGoPrevious: true,
		IsLast:        true,
	}

	kb := buildQuestionKeyboard(view)
	require.Len(t, kb.InlineKeyboard, 5)
	assert.Equal(t, "✅ C. c", kb.InlineKeyboard[2][0].Text)
	require.NotNil(t, kb.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, "opt:1:2", *kb.InlineKeyboard[2][0].CallbackData)

	nav := kb.InlineKeyboard[4]
	require.Len(t, nav, 2)
	assert.Equal(t, actionPrevious, *nav[0].CallbackData)
	assert.Equal(t, actionSubmit, *nav[1].CallbackData)

	view.Index, view.CanGoPrevious, view.IsLast = 0, false, false
	nav = buildQuestionKeyboard(view).InlineKeyboard[4]
	require.Len(t, nav, 1)
	assert.Equal(t, actionNext, *nav[0].CallbackData)
}

func TestBuildTakerKeyboardHidesStart(t *testing.T) {
	assert.Len(t, buildTakerKeyboard(0).InlineKeyboard, 1)
	assert.Len(t, buildTakerKeyboard(3).InlineKeyboard, 2)
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 10))

	chunks := splitMessage("aaaa\nbbbb\ncccc", 10)
	assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)

	chunks = splitMessage(strings.Repeat("x", 25), 10)
	assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, chunks)

	for _, c := range splitMessage(strings.Repeat("line\n", 2000), maxMessageLength) {
		assert.LessOrEqual(t, len(c), maxMessageLength)
	}
}

func TestMsgQuestionsAvailable(t *testing.T) {
	assert.Equal(t, "0 questions available", msgQuestionsAvailable(0))
	assert.Equal(t, "1 question available", msgQuestionsAvailable(1))
	assert.Equal(t, "7 questions available", msgQuestionsAvailable(7))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&entities.ValidationError{Field: entities.FieldQuestion}, "Please enter the question text."},
		{&entities.ValidationError{Field: entities.OptionField(2)}, "Please fill in option C."},
		{&entities.ValidationError{Field: entities.FieldCorrectAnswer}, "Please select the correct answer: mark one option with *."},
		{fmt.Errorf("submit: %w", &entities.IncompleteAnswersError{FirstUnansweredIndex: 2}), "Please answer question 3 before submitting."},
		{entities.ErrEmptyQuestionSet, msgNoQuestions},
		{storage.ErrSessionNotFound, msgNoActiveTest},
		{entities.ErrSessionNotInProgress, msgNoActiveTest},
		{errDraftFormat, msgDraftFormat},
	}

	for _, tt := range tests {
		got, ok := userMessage(tt.err)
		assert.True(t, ok, tt.err.Error())
		assert.Equal(t, tt.want, got)
	}

	_, ok := userMessage(errors.New("connection reset"))
	assert.False(t, ok)
}
