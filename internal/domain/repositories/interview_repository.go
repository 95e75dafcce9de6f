package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// InterviewRepository defines the interface for interview data access
type InterviewRepository interface {
	// Create persists a new interview
	Create(ctx context.Context, interview *entities.Interview) error

	// FindByID finds an interview by ID regardless of owner
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)

	// FindByIDAndOwner finds an interview by ID scoped to the given owner.
	// Returns entities.ErrInterviewNotFound when missing or owned by someone
	// else, so callers cannot distinguish the two cases.
	FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Interview, error)

	// ListByOwner returns all interviews of an owner, newest started first
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Interview, error)

	// Update persists mutated interview fields
	Update(ctx context.Context, interview *entities.Interview) error

	// CreateQuestionInOrder atomically claims the next order index for the
	// interview and inserts the question built by build. The interview row is
	// locked for the duration: status and cap are re-checked under the lock,
	// the stored question counter is bumped, and the question is inserted in
	// the same transaction. Returns entities.ErrInterviewCompleted or
	// entities.ErrQuestionLimit without inserting anything when the re-check
	// fails.
	CreateQuestionInOrder(ctx context.Context, interviewID uuid.UUID, maxQuestions int, build func(orderIndex int) *entities.Question) (*entities.Question, error)
}
