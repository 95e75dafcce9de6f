package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	pkgai "github.com/mockmate/mockmate-api/pkg/ai"
)

// ChatClient abstracts an OpenAI-compatible chat completion backend
// (pkg/ai.GroqClient, pkg/ai.OllamaClient, or a test fake).
type ChatClient interface {
	Name() string
	ChatCompletion(ctx context.Context, req pkgai.ChatRequest) (string, error)
}

// Provider generates interview questions and evaluates free-text answers.
// Both operations may block on network I/O; neither retries internally, so
// callers can safely retry failed calls. A transport failure is returned as an
// error; malformed model output is absorbed into a fallback evaluation and
// never surfaced as an error.
type Provider interface {
	GenerateQuestion(ctx context.Context, role, difficulty, topic string) (string, error)
	EvaluateAnswer(ctx context.Context, role, question, answer string) (entities.Evaluation, error)
}

type provider struct {
	client ChatClient
	parser *Parser
	logger *zap.Logger
}

// NewProvider constructs a Provider over the given chat backend
func NewProvider(client ChatClient, logger *zap.Logger) Provider {
	return &provider{
		client: client,
		parser: NewParser(),
		logger: logger,
	}
}

// GenerateQuestion asks the model for a single question for the role
func (p *provider) GenerateQuestion(ctx context.Context, role, difficulty, topic string) (string, error) {
	if topic == "" {
		topic = "General"
	}

	prompt := fmt.Sprintf(generateQuestionPrompt, role, difficulty, topic)
	content, err := p.client.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages:    []pkgai.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("%s question generation failed: %w", p.client.Name(), err)
	}

	return strings.TrimSpace(content), nil
}

// EvaluateAnswer asks the model to score the answer and parses the result
func (p *provider) EvaluateAnswer(ctx context.Context, role, question, answer string) (entities.Evaluation, error) {
	prompt := fmt.Sprintf(evaluateAnswerPrompt, role, question, answer)
	content, err := p.client.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages:       []pkgai.ChatMessage{{Role: "user", Content: prompt}},
		Temperature:    0.2,
		MaxTokens:      300,
		ResponseFormat: &pkgai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return entities.Evaluation{}, fmt.Errorf("%s evaluation failed: %w", p.client.Name(), err)
	}

	eval, ok := p.parser.ParseEvaluation(content)
	if !ok && p.logger != nil {
		p.logger.Warn("ai.evaluation.parse_failed",
			zap.String("provider", p.client.Name()),
			zap.Int("content_length", len(content)),
		)
	}
	return eval, nil
}
