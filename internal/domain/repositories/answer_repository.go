package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// AnswerRepository defines the interface for answer data access
type AnswerRepository interface {
	// Create persists a new answer. Returns entities.ErrDuplicateAnswer when
	// an answer for the same (interview, question) pair already exists.
	Create(ctx context.Context, answer *entities.Answer) error

	// ListByInterview returns all answers of an interview, oldest first
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*entities.Answer, error)
}
