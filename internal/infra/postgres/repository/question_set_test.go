package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestQuestionSetStoreLoad(t *testing.T) {
	mock := newMock(t)
	store := NewQuestionSetStore(mock, "mcq_questions")

	payload := []byte(`[{"id":1,"question":"q","options":["a","b","c","d"],"correctAnswer":0}]`)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM question_sets WHERE name = $1`)).
		WithArgs("mcq_questions").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionSetStoreLoadMissing(t *testing.T) {
	mock := newMock(t)
	store := NewQuestionSetStore(mock, "mcq_questions")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM question_sets`)).
		WithArgs("mcq_questions").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionSetStoreLoadError(t *testing.T) {
	mock := newMock(t)
	store := NewQuestionSetStore(mock, "mcq_questions")

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM question_sets`)).
		WithArgs("mcq_questions").
		WillReturnError(boom)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestQuestionSetStoreSave(t *testing.T) {
	mock := newMock(t)
	store := NewQuestionSetStore(mock, "mcq_questions")

	payload := []byte(`[]`)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO question_sets (name, payload, updated_at)`)).
		WithArgs("mcq_questions", payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Save(context.Background(), payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionSetStoreEnsureSchema(t *testing.T) {
	mock := newMock(t)
	store := NewQuestionSetStore(mock, "mcq_questions")

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS question_sets`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
