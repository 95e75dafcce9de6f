package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestionTypeTechnical is the default question type
const QuestionTypeTechnical = "Technical"

// Question is a single interview question. Order indexes are 1-based and
// strictly increasing within an interview; questions are immutable once issued.
type Question struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID  uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;index"`
	QuestionText string    `json:"question_text" gorm:"type:text;not null"`
	QuestionType string    `json:"question_type" gorm:"type:varchar(50);default:'Technical';not null"`
	OrderIndex   int       `json:"order_index" gorm:"type:integer;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// NewQuestion creates a question at the given order index
func NewQuestion(interviewID uuid.UUID, text string, orderIndex int) *Question {
	return &Question{
		ID:           uuid.New(),
		InterviewID:  interviewID,
		QuestionText: text,
		QuestionType: QuestionTypeTechnical,
		OrderIndex:   orderIndex,
		CreatedAt:    time.Now(),
	}
}
