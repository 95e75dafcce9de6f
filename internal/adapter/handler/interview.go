package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/mockmate/mockmate-api/errors"
	interviewdto "github.com/mockmate/mockmate-api/internal/adapter/dto/interview"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/infrastructure/http/middleware"
	"github.com/mockmate/mockmate-api/internal/usecase/interview"
)

// Interview handles interview lifecycle HTTP requests
type Interview struct {
	interviewService interview.Service
	logger           *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(interviewService interview.Service, logger *zap.Logger) *Interview {
	return &Interview{
		interviewService: interviewService,
		logger:           logger,
	}
}

// Create starts a new interview session
// POST /v1/interviews
func (h *Interview) Create(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	var req interviewdto.StartInterviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	created, err := h.interviewService.Start(c.Request().Context(), ident,
		req.Role, req.Difficulty, entities.InterviewMode(req.Mode))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, interviewdto.NewInterviewResponse(created))
}

// List returns the caller's interviews, newest first
// GET /v1/interviews
func (h *Interview) List(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	interviews, err := h.interviewService.List(c.Request().Context(), ident)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, interviewdto.NewInterviewListResponse(interviews))
}

// Get returns a single interview
// GET /v1/interviews/:id
func (h *Interview) Get(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	id, err := h.interviewID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	found, err := h.interviewService.Get(c.Request().Context(), ident, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, interviewdto.NewInterviewResponse(found))
}

// Questions lists the questions issued so far
// GET /v1/interviews/:id/questions
func (h *Interview) Questions(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	id, err := h.interviewID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	questions, err := h.interviewService.Questions(c.Request().Context(), ident, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	result := make([]*interviewdto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, interviewdto.NewQuestionResponse(q))
	}
	return handleSuccess(c, h.logger, http.StatusOK, result)
}

// NextQuestion generates and persists the next question
// POST /v1/interviews/:id/next_question
func (h *Interview) NextQuestion(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	id, err := h.interviewID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	question, err := h.interviewService.NextQuestion(c.Request().Context(), ident, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, interviewdto.NewQuestionResponse(question))
}

// SubmitAnswer evaluates and stores an answer to an issued question
// POST /v1/interviews/:id/submit_answer
func (h *Interview) SubmitAnswer(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	id, err := h.interviewID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewdto.SubmitAnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrInvalidArgument("Invalid question id"))
	}

	answer, err := h.interviewService.SubmitAnswer(c.Request().Context(), ident, id, questionID, req.Answer)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, interviewdto.NewAnswerResponse(answer))
}

// Complete finishes the interview and returns the feedback report
// POST /v1/interviews/:id/complete
func (h *Interview) Complete(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	id, err := h.interviewID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	result, err := h.interviewService.Complete(c.Request().Context(), ident, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, interviewdto.NewCompletionResponse(id.String(), result))
}

func (h *Interview) interviewID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidArgument("Invalid interview id")
	}
	return id, nil
}
