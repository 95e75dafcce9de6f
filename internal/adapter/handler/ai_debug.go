package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/mockmate/mockmate-api/errors"
	interviewdto "github.com/mockmate/mockmate-api/internal/adapter/dto/interview"
	"github.com/mockmate/mockmate-api/internal/usecase/ai"
)

// AIDebug exposes the provider directly, bypassing interview state. Useful
// for prompt tuning and for checking provider connectivity in deployments.
type AIDebug struct {
	provider ai.Provider
	logger   *zap.Logger
}

// NewAIDebug creates a new AI debug handler
func NewAIDebug(provider ai.Provider, logger *zap.Logger) *AIDebug {
	return &AIDebug{
		provider: provider,
		logger:   logger,
	}
}

// Generate produces a single question without touching any interview
// POST /v1/ai-debug/generate
func (h *AIDebug) Generate(c echo.Context) error {
	var req interviewdto.GenerateQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	question, err := h.provider.GenerateQuestion(c.Request().Context(), req.Role, req.Difficulty, req.Topic)
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrAIProviderFailed(err))
	}
	return handleSuccess(c, h.logger, http.StatusOK, interviewdto.GeneratedQuestionResponse{Question: question})
}

// Evaluate scores a free-form answer without persisting anything
// POST /v1/ai-debug/evaluate
func (h *AIDebug) Evaluate(c echo.Context) error {
	var req interviewdto.EvaluateAnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	eval, err := h.provider.EvaluateAnswer(c.Request().Context(), req.Role, req.Question, req.Answer)
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrAIProviderFailed(err))
	}
	return handleSuccess(c, h.logger, http.StatusOK, eval)
}
