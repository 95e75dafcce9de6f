package interview

import (
	"time"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/usecase/interview"
)

// InterviewResponse represents an interview in responses
type InterviewResponse struct {
	ID             string                   `json:"id"`
	Role           string                   `json:"role"`
	Difficulty     string                   `json:"difficulty"`
	Mode           string                   `json:"mode"`
	Status         string                   `json:"status"`
	QuestionCount  int                      `json:"question_count"`
	StartedAt      time.Time                `json:"started_at"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
	FeedbackReport *entities.FeedbackReport `json:"feedback_report"`
}

// QuestionResponse represents a generated question
type QuestionResponse struct {
	ID           string    `json:"id"`
	InterviewID  string    `json:"interview_id"`
	QuestionText string    `json:"question_text"`
	QuestionType string    `json:"question_type"`
	OrderIndex   int       `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnswerResponse represents a submitted answer with its evaluation
type AnswerResponse struct {
	ID         string              `json:"id"`
	QuestionID string              `json:"question_id"`
	Answer     string              `json:"answer"`
	Evaluation entities.Evaluation `json:"evaluation"`
	CreatedAt  time.Time           `json:"created_at"`
}

// CompletionResponse represents the outcome of completing an interview
type CompletionResponse struct {
	InterviewID    string                   `json:"interview_id"`
	Status         string                   `json:"status"`
	Message        string                   `json:"message,omitempty"`
	FeedbackReport *entities.FeedbackReport `json:"feedback_report"`
}

// GeneratedQuestionResponse represents the debug generation result
type GeneratedQuestionResponse struct {
	Question string `json:"question"`
}

// NewInterviewResponse maps an interview entity to its response shape
func NewInterviewResponse(i *entities.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:             i.ID.String(),
		Role:           i.Role,
		Difficulty:     i.Difficulty,
		Mode:           string(i.Mode),
		Status:         string(i.Status),
		QuestionCount:  i.QuestionCount,
		StartedAt:      i.StartedAt,
		CompletedAt:    i.CompletedAt,
		FeedbackReport: i.FeedbackReport,
	}
}

// NewInterviewListResponse maps a slice of interviews
func NewInterviewListResponse(interviews []*entities.Interview) []*InterviewResponse {
	result := make([]*InterviewResponse, 0, len(interviews))
	for _, i := range interviews {
		result = append(result, NewInterviewResponse(i))
	}
	return result
}

// NewQuestionResponse maps a question entity to its response shape
func NewQuestionResponse(q *entities.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:           q.ID.String(),
		InterviewID:  q.InterviewID.String(),
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		OrderIndex:   q.OrderIndex,
		CreatedAt:    q.CreatedAt,
	}
}

// NewAnswerResponse maps an answer entity to its response shape
func NewAnswerResponse(a *entities.Answer) *AnswerResponse {
	return &AnswerResponse{
		ID:         a.ID.String(),
		QuestionID: a.QuestionID.String(),
		Answer:     a.UserAnswerText,
		Evaluation: a.Evaluation,
		CreatedAt:  a.CreatedAt,
	}
}

// NewCompletionResponse maps a completion result to its response shape
func NewCompletionResponse(interviewID string, result *interview.CompletionResult) *CompletionResponse {
	return &CompletionResponse{
		InterviewID:    interviewID,
		Status:         string(entities.InterviewStatusCompleted),
		Message:        result.Message,
		FeedbackReport: result.Report,
	}
}
