package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	// FindByID finds a question by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error)

	// ListByInterview returns an interview's questions ordered by order index
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*entities.Question, error)
}
