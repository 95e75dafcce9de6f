package interview

// StartInterviewRequest represents the request to start an interview
type StartInterviewRequest struct {
	Role       string `json:"role" validate:"required,min=1,max=255"`
	Difficulty string `json:"difficulty" validate:"required,min=1,max=50"`
	Mode       string `json:"mode,omitempty" validate:"omitempty,oneof=Text Voice"`
}

// SubmitAnswerRequest represents the request to answer a question
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	Answer     string `json:"answer" validate:"required,min=1"`
}

// GenerateQuestionRequest represents the direct provider debug request
type GenerateQuestionRequest struct {
	Role       string `json:"role" validate:"required,min=1,max=255"`
	Difficulty string `json:"difficulty" validate:"required,min=1,max=50"`
	Topic      string `json:"topic,omitempty" validate:"omitempty,max=255"`
}

// EvaluateAnswerRequest represents the direct provider debug request
type EvaluateAnswerRequest struct {
	Role     string `json:"role" validate:"required,min=1,max=255"`
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
}
