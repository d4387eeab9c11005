package storage

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

func TestSessionStorageUpdateCreates(t *testing.T) {
	s := NewSessionStorage[int64]()

	assert.ErrorIs(t, s.View(1, func(*entities.TestSession) error { return nil }), ErrSessionNotFound)

	err := s.Update(1, func(ts *entities.TestSession) error {
		assert.Equal(t, entities.StatusNotStarted, ts.Status())
		return ts.Start([]entities.Question{{ID: 1, Text: "q", Options: [4]string{"a", "b", "c", "d"}}})
	})
	require.NoError(t, err)

	err = s.View(1, func(ts *entities.TestSession) error {
		assert.Equal(t, entities.StatusInProgress, ts.Status())
		return nil
	})
	require.NoError(t, err)
}

func TestSessionStorageViewMissing(t *testing.T) {
	s := NewSessionStorage[string]()

	err := s.View("nope", func(*entities.TestSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoragePropagatesError(t *testing.T) {
	s := NewSessionStorage[int64]()
	boom := errors.New("boom")

	err := s.Update(7, func(*entities.TestSession) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestSessionStorageDelete(t *testing.T) {
	s := NewSessionStorage[int64]()
	require.NoError(t, s.Update(3, func(*entities.TestSession) error { return nil }))

	s.Delete(3)
	err := s.View(3, func(*entities.TestSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorageSerializesUpdates(t *testing.T) {
	s := NewSessionStorage[int64]()
	questions := []entities.Question{{ID: 1, Text: "q", Options: [4]string{"a", "b", "c", "d"}}}
	require.NoError(t, s.Update(1, func(ts *entities.TestSession) error { return ts.Start(questions) }))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(option int) {
			defer wg.Done()
			_ = s.Update(1, func(ts *entities.TestSession) error { return ts.SelectAnswer(option % 4) })
		}(i)
	}
	wg.Wait()

	require.NoError(t, s.View(1, func(ts *entities.TestSession) error {
		assert.NotEqual(t, entities.Unanswered, ts.Answer(0))
		return nil
	}))
}

func TestChatStorage(t *testing.T) {
	s := NewChatStorage()

	assert.Equal(t, RoleNone, s.Get(10).Role)

	state := s.Modify(10, func(st *ChatState) {
		st.Role = RoleAuthor
		st.AwaitingQuestion = true
	})
	assert.Equal(t, RoleAuthor, state.Role)

	got := s.Get(10)
	assert.True(t, got.AwaitingQuestion)

	s.Modify(10, func(st *ChatState) { st.AwaitingQuestion = false })
	assert.Equal(t, ChatState{Role: RoleAuthor}, s.Get(10))
	assert.Equal(t, ChatState{}, s.Get(11))
}
