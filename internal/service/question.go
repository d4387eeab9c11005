package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

// QuestionService implements the author side: adding, listing and
// deleting questions.
type QuestionService struct {
	repository QuestionRepository
	logger     *zap.Logger
}

func NewQuestionService(repository QuestionRepository, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		repository: repository,
		logger:     logger,
	}
}

// Add creates a question. correct may be nil when the author did not pick
// the correct option; this is reported as a validation error.
func (s *QuestionService) Add(
	ctx context.Context,
	text string,
	options [entities.NumOptions]string,
	correct *int,
) (entities.Question, error) {
	q, err := s.repository.Add(ctx, text, options, correct)
	if err != nil {
		return entities.Question{}, err
	}

	s.logger.Info("question added",
		zap.Int64("question_id", q.ID),
		zap.Int("count", s.repository.Count()),
	)

	return q, nil
}

// Delete removes a question. Unknown ids are ignored.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("question deleted",
		zap.Int64("question_id", id),
		zap.Int("count", s.repository.Count()),
	)

	return nil
}

func (s *QuestionService) List(_ context.Context) []entities.Question {
	return s.repository.List()
}

func (s *QuestionService) Get(_ context.Context, id int64) (entities.Question, error) {
	return s.repository.Get(id)
}

// Count returns the number of questions. A test can only start when it is
// greater than zero.
func (s *QuestionService) Count(_ context.Context) int {
	return s.repository.Count()
}
