package entities

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus represents the lifecycle state of an interview
type InterviewStatus string

const (
	InterviewStatusInProgress InterviewStatus = "InProgress"
	InterviewStatusCompleted  InterviewStatus = "Completed" // terminal
)

// IsValid checks if the interview status is valid
func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusInProgress, InterviewStatusCompleted:
		return true
	}
	return false
}

// InterviewMode represents how the interview is conducted
type InterviewMode string

const (
	InterviewModeText  InterviewMode = "Text"
	InterviewModeVoice InterviewMode = "Voice" // reserved, not exercised yet
)

// MaxQuestionsPerInterview caps the number of questions issued per interview.
// The cap is enforced inside the same transaction that claims the order index.
const MaxQuestionsPerInterview = 10

// Interview represents a mock-interview session. It is created InProgress and
// mutated only by the interview service; FeedbackReport is non-nil iff the
// interview completed with at least one answer.
type Interview struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    string          `json:"user_id" gorm:"column:owner_id;type:varchar(64);not null;index"`
	Role       string          `json:"role" gorm:"type:varchar(255);not null"`
	Difficulty string          `json:"difficulty" gorm:"type:varchar(50);not null"`
	Mode       InterviewMode   `json:"mode" gorm:"type:varchar(20);default:'Text';not null"`
	Status     InterviewStatus `json:"status" gorm:"type:varchar(20);default:'InProgress';not null"`

	// QuestionCount backs atomic order-index assignment: the next question's
	// order index is claimed by incrementing this counter under a row lock.
	QuestionCount int `json:"question_count" gorm:"type:integer;default:0;not null"`

	StartedAt      time.Time       `json:"started_at" gorm:"type:timestamp;not null;index"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" gorm:"type:timestamp"`
	FeedbackReport *FeedbackReport `json:"feedback_report,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Interview) TableName() string {
	return "interviews"
}

// NewInterview creates a new in-progress interview owned by ident
func NewInterview(ident Identity, role, difficulty string, mode InterviewMode) *Interview {
	now := time.Now()
	if mode == "" {
		mode = InterviewModeText
	}
	return &Interview{
		ID:         uuid.New(),
		OwnerID:    ident.ID,
		Role:       role,
		Difficulty: difficulty,
		Mode:       mode,
		Status:     InterviewStatusInProgress,
		StartedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsOwnedBy checks ownership by owner id equality
func (i *Interview) IsOwnedBy(ident Identity) bool {
	return i.OwnerID == ident.ID
}

// IsCompleted reports whether the interview reached its terminal state
func (i *Interview) IsCompleted() bool {
	return i.Status == InterviewStatusCompleted
}

// MarkCompleted transitions the interview to Completed. The report may be nil
// when the interview finished without any answers.
func (i *Interview) MarkCompleted(report *FeedbackReport) {
	now := time.Now()
	i.Status = InterviewStatusCompleted
	i.CompletedAt = &now
	i.FeedbackReport = report
	i.UpdatedAt = now
}
