package interview

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/mockmate/mockmate-api/errors"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/domain/repositories"
	"github.com/mockmate/mockmate-api/internal/usecase/ai"
)

// CompletionResult is the outcome of completing an interview. Report is nil
// when the interview finished without any answers; the message carries the
// human-readable explanation in that case.
type CompletionResult struct {
	Message string                   `json:"message"`
	Report  *entities.FeedbackReport `json:"report"`
}

// Service drives the interview lifecycle: creation, sequential question
// issuance, answer evaluation and completion with aggregate scoring.
type Service interface {
	Start(ctx context.Context, ident entities.Identity, role, difficulty string, mode entities.InterviewMode) (*entities.Interview, error)
	List(ctx context.Context, ident entities.Identity) ([]*entities.Interview, error)
	Get(ctx context.Context, ident entities.Identity, id uuid.UUID) (*entities.Interview, error)
	Questions(ctx context.Context, ident entities.Identity, id uuid.UUID) ([]*entities.Question, error)
	NextQuestion(ctx context.Context, ident entities.Identity, id uuid.UUID) (*entities.Question, error)
	SubmitAnswer(ctx context.Context, ident entities.Identity, id, questionID uuid.UUID, answerText string) (*entities.Answer, error)
	Complete(ctx context.Context, ident entities.Identity, id uuid.UUID) (*CompletionResult, error)
}

type service struct {
	interviewRepo repositories.InterviewRepository
	questionRepo  repositories.QuestionRepository
	answerRepo    repositories.AnswerRepository
	provider      ai.Provider
	logger        *zap.Logger
}

// NewService constructs the interview service. The AI provider is injected
// here, selected once at process start; business logic never looks it up.
func NewService(
	interviewRepo repositories.InterviewRepository,
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	provider ai.Provider,
	logger *zap.Logger,
) Service {
	return &service{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		provider:      provider,
		logger:        logger,
	}
}

// Start creates a new interview in progress
func (s *service) Start(ctx context.Context, ident entities.Identity, role, difficulty string, mode entities.InterviewMode) (*entities.Interview, error) {
	interview := entities.NewInterview(ident, role, difficulty, mode)
	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("interview.started",
			zap.String("interview_id", interview.ID.String()),
			zap.String("owner_id", interview.OwnerID),
			zap.String("role", interview.Role),
			zap.Bool("guest", ident.IsGuest),
		)
	}
	return interview, nil
}

// List returns the caller's interviews, newest started first
func (s *service) List(ctx context.Context, ident entities.Identity) ([]*entities.Interview, error) {
	interviews, err := s.interviewRepo.ListByOwner(ctx, ident.ID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return interviews, nil
}

// Get returns a single interview owned by the caller
func (s *service) Get(ctx context.Context, ident entities.Identity, id uuid.UUID) (*entities.Interview, error) {
	return s.findOwned(ctx, ident, id)
}

// Questions returns the questions issued so far, in order. Clients use this
// to resume an in-progress session.
func (s *service) Questions(ctx context.Context, ident entities.Identity, id uuid.UUID) ([]*entities.Question, error) {
	interview, err := s.findOwned(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByInterview(ctx, interview.ID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return questions, nil
}

// NextQuestion generates and persists the next question for the interview.
// The provider call happens before any write; order-index assignment and the
// question insert run atomically against a row-locked interview.
func (s *service) NextQuestion(ctx context.Context, ident entities.Identity, id uuid.UUID) (*entities.Question, error) {
	interview, err := s.findOwned(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	if interview.IsCompleted() {
		return nil, apperrors.ErrInterviewCompleted(id.String())
	}
	// Cheap pre-check so a full interview skips the provider call. The
	// authoritative check happens again under the row lock.
	if interview.QuestionCount >= entities.MaxQuestionsPerInterview {
		return nil, apperrors.ErrQuestionLimitExceeded(id.String(), entities.MaxQuestionsPerInterview)
	}

	questionText, err := s.provider.GenerateQuestion(ctx, interview.Role, interview.Difficulty, "")
	if err != nil {
		return nil, apperrors.ErrAIProviderFailed(err)
	}

	question, err := s.interviewRepo.CreateQuestionInOrder(ctx, interview.ID, entities.MaxQuestionsPerInterview,
		func(orderIndex int) *entities.Question {
			return entities.NewQuestion(interview.ID, questionText, orderIndex)
		})
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrInterviewNotFound):
			return nil, apperrors.ErrInterviewNotFound(id.String())
		case stdErrors.Is(err, entities.ErrInterviewCompleted):
			return nil, apperrors.ErrInterviewCompleted(id.String())
		case stdErrors.Is(err, entities.ErrQuestionLimit):
			return nil, apperrors.ErrQuestionLimitExceeded(id.String(), entities.MaxQuestionsPerInterview)
		default:
			return nil, apperrors.ErrDBTransactionFailed(err)
		}
	}

	if s.logger != nil {
		s.logger.Info("interview.question_issued",
			zap.String("interview_id", interview.ID.String()),
			zap.String("question_id", question.ID.String()),
			zap.Int("order_index", question.OrderIndex),
		)
	}
	return question, nil
}

// SubmitAnswer evaluates and persists an answer for one of the interview's
// questions. The question must belong to this interview; a question id from
// another interview reads as not found so existence is never leaked. One
// answer per question: a duplicate submission is rejected as a conflict.
func (s *service) SubmitAnswer(ctx context.Context, ident entities.Identity, id, questionID uuid.UUID, answerText string) (*entities.Answer, error) {
	interview, err := s.findOwned(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	if interview.IsCompleted() {
		return nil, apperrors.ErrInterviewCompleted(id.String())
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrQuestionNotFound) {
			return nil, apperrors.ErrQuestionNotFound(questionID.String())
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if question.InterviewID != interview.ID {
		return nil, apperrors.ErrQuestionNotFound(questionID.String())
	}

	eval, err := s.provider.EvaluateAnswer(ctx, interview.Role, question.QuestionText, answerText)
	if err != nil {
		return nil, apperrors.ErrAIProviderFailed(err)
	}

	answer := entities.NewAnswer(interview.ID, question.ID, answerText, eval)
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		if stdErrors.Is(err, entities.ErrDuplicateAnswer) {
			return nil, apperrors.ErrAnswerAlreadySubmitted(questionID.String())
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("interview.answer_submitted",
			zap.String("interview_id", interview.ID.String()),
			zap.String("question_id", question.ID.String()),
			zap.Int("score", eval.Score),
			zap.Bool("fallback_evaluation", eval.IsFallback()),
		)
	}
	return answer, nil
}

// Complete transitions the interview to its terminal state and produces the
// aggregate feedback report. Completing an already-completed interview is an
// idempotent no-op returning the stored report; nothing is recomputed. An
// interview completed with zero answers stays reportless: the stored
// feedback_report remains null and only the message explains why.
func (s *service) Complete(ctx context.Context, ident entities.Identity, id uuid.UUID) (*CompletionResult, error) {
	interview, err := s.findOwned(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	if interview.IsCompleted() {
		return &CompletionResult{
			Message: "Interview completed",
			Report:  interview.FeedbackReport,
		}, nil
	}

	answers, err := s.answerRepo.ListByInterview(ctx, interview.ID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	var report *entities.FeedbackReport
	message := "Interview completed"
	if len(answers) == 0 {
		message = "No questions were answered."
	} else {
		evals := make([]entities.Evaluation, len(answers))
		for i, answer := range answers {
			evals[i] = answer.Evaluation
		}
		report = BuildFeedbackReport(evals)
	}

	interview.MarkCompleted(report)
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		fields := []zap.Field{
			zap.String("interview_id", interview.ID.String()),
			zap.Int("answers", len(answers)),
		}
		if report != nil {
			fields = append(fields, zap.Float64("overall_score", report.OverallScore))
		}
		s.logger.Info("interview.completed", fields...)
	}

	return &CompletionResult{Message: message, Report: report}, nil
}

// findOwned loads an interview scoped to the caller. A missing interview and
// another user's interview are indistinguishable to the caller.
func (s *service) findOwned(ctx context.Context, ident entities.Identity, id uuid.UUID) (*entities.Interview, error) {
	interview, err := s.interviewRepo.FindByIDAndOwner(ctx, id, ident.ID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound(id.String())
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return interview, nil
}
