package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Evaluation correctness values produced by the AI provider
const (
	CorrectnessCorrect          = "Correct"
	CorrectnessPartiallyCorrect = "Partially Correct"
	CorrectnessIncorrect        = "Incorrect"
	// CorrectnessError marks the deterministic fallback substituted when the
	// provider returned output that could not be parsed.
	CorrectnessError = "Error"
)

// Evaluation is the structured AI judgement of a single answer. It is stored
// verbatim as produced by the provider (or its fallback) and never edited.
type Evaluation struct {
	Score           int      `json:"score"`
	Correctness     string   `json:"correctness"`
	Feedback        string   `json:"feedback"`
	IdealAnswer     string   `json:"ideal_answer"`
	ImprovementTips []string `json:"improvement_tips"`
	MissingPoints   []string `json:"missing_points"`
}

// IsFallback reports whether this evaluation is the parse-failure substitute
func (e Evaluation) IsFallback() bool {
	return e.Correctness == CorrectnessError
}

// FallbackEvaluation is the deterministic evaluation substituted when the
// provider returns malformed structured output. Downstream aggregation treats
// it as an ordinary weak score.
func FallbackEvaluation() Evaluation {
	return Evaluation{
		Score:           0,
		Correctness:     CorrectnessError,
		Feedback:        "AI Error in processing response.",
		IdealAnswer:     "N/A",
		ImprovementTips: []string{},
		MissingPoints:   []string{},
	}
}

// Scan implements sql.Scanner interface for GORM
func (e *Evaluation) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, e)
}

// Value implements driver.Valuer interface for GORM
func (e Evaluation) Value() (driver.Value, error) {
	return json.Marshal(e)
}

// Answer records one submitted answer together with its embedded evaluation.
// The (interview_id, question_id) pair is unique: one answer per question.
type Answer struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID    uuid.UUID  `json:"interview_id" gorm:"type:uuid;not null;index;uniqueIndex:uq_answers_interview_question"`
	QuestionID     uuid.UUID  `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:uq_answers_interview_question"`
	UserAnswerText string     `json:"user_answer_text" gorm:"type:text;not null"`
	Evaluation     Evaluation `json:"ai_evaluation" gorm:"column:ai_evaluation;type:jsonb;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Answer) TableName() string {
	return "answers"
}

// NewAnswer creates an answer with its evaluation attached
func NewAnswer(interviewID, questionID uuid.UUID, text string, eval Evaluation) *Answer {
	return &Answer{
		ID:             uuid.New(),
		InterviewID:    interviewID,
		QuestionID:     questionID,
		UserAnswerText: text,
		Evaluation:     eval,
		CreatedAt:      time.Now(),
	}
}
