package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// AnswerRepository implements the answer repository interface using GORM
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{
		db: db,
	}
}

// Create persists a new answer. The unique index on (interview_id,
// question_id) rejects duplicate submissions for the same question.
func (r *AnswerRepository) Create(ctx context.Context, answer *entities.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrDuplicateAnswer
		}
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

// ListByInterview returns all answers of an interview, oldest first
func (r *AnswerRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return answers, nil
}
