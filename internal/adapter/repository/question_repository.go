package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// QuestionRepository implements the question repository interface using GORM
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// FindByID finds a question by ID
func (r *QuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	var question entities.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question by ID: %w", err)
	}
	return &question, nil
}

// ListByInterview returns an interview's questions ordered by order index
func (r *QuestionRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*entities.Question, error) {
	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
