package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// InterviewRepository implements the interview repository interface using GORM
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{
		db: db,
	}
}

// Create persists a new interview
func (r *InterviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// FindByID finds an interview by ID regardless of owner
func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	var interview entities.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview by ID: %w", err)
	}
	return &interview, nil
}

// FindByIDAndOwner finds an interview by ID scoped to the given owner
func (r *InterviewRepository) FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Interview, error) {
	var interview entities.Interview
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview by ID and owner: %w", err)
	}
	return &interview, nil
}

// ListByOwner returns all interviews of an owner, newest started first
func (r *InterviewRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Interview, error) {
	var interviews []*entities.Interview
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("started_at DESC").
		Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// Update persists mutated interview fields
func (r *InterviewRepository) Update(ctx context.Context, interview *entities.Interview) error {
	if err := r.db.WithContext(ctx).Save(interview).Error; err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	return nil
}

// CreateQuestionInOrder claims the next order index under a row lock and
// inserts the question in the same transaction. Concurrent callers serialize
// on the interview row, so two requests can never receive the same index.
func (r *InterviewRepository) CreateQuestionInOrder(
	ctx context.Context,
	interviewID uuid.UUID,
	maxQuestions int,
	build func(orderIndex int) *entities.Question,
) (*entities.Question, error) {
	var question *entities.Question

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var interview entities.Interview
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", interviewID).
			First(&interview).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrInterviewNotFound
			}
			return fmt.Errorf("failed to lock interview: %w", err)
		}

		// Re-check under the lock: the interview may have been completed or
		// filled up between the caller's read and this transaction.
		if interview.IsCompleted() {
			return entities.ErrInterviewCompleted
		}
		orderIndex := interview.QuestionCount + 1
		if orderIndex > maxQuestions {
			return entities.ErrQuestionLimit
		}

		question = build(orderIndex)
		if err := tx.Create(question).Error; err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}

		if err := tx.Model(&entities.Interview{}).
			Where("id = ?", interviewID).
			Update("question_count", orderIndex).Error; err != nil {
			return fmt.Errorf("failed to advance question counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}
