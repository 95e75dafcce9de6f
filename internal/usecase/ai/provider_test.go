package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	pkgai "github.com/mockmate/mockmate-api/pkg/ai"
)

type fakeChatClient struct {
	content string
	err     error
	lastReq pkgai.ChatRequest
}

func (f *fakeChatClient) Name() string { return "fake" }

func (f *fakeChatClient) ChatCompletion(ctx context.Context, req pkgai.ChatRequest) (string, error) {
	f.lastReq = req
	return f.content, f.err
}

func TestGenerateQuestion_TrimsContent(t *testing.T) {
	client := &fakeChatClient{content: "\n  What is a channel in Go?  \n"}
	p := NewProvider(client, nil)

	question, err := p.GenerateQuestion(context.Background(), "Backend Engineer", "Senior", "")
	require.NoError(t, err)
	assert.Equal(t, "What is a channel in Go?", question)
	// Empty topic defaults to General inside the prompt
	assert.Contains(t, client.lastReq.Messages[0].Content, "Topic focus: General")
}

func TestGenerateQuestion_TransportError(t *testing.T) {
	client := &fakeChatClient{err: errors.New("connection refused")}
	p := NewProvider(client, nil)

	_, err := p.GenerateQuestion(context.Background(), "Backend Engineer", "Senior", "Concurrency")
	assert.Error(t, err)
}

func TestEvaluateAnswer_ValidJSON(t *testing.T) {
	client := &fakeChatClient{content: `{
		"score": 8,
		"correctness": "Correct",
		"feedback": "Solid explanation.",
		"ideal_answer": "Channels synchronize goroutines.",
		"improvement_tips": ["Mention buffering"],
		"missing_points": []
	}`}
	p := NewProvider(client, nil)

	eval, err := p.EvaluateAnswer(context.Background(), "Backend Engineer", "What is a channel?", "A typed conduit.")
	require.NoError(t, err)
	assert.Equal(t, 8, eval.Score)
	assert.Equal(t, entities.CorrectnessCorrect, eval.Correctness)
	assert.False(t, eval.IsFallback())
	assert.NotNil(t, eval.MissingPoints)
}

func TestEvaluateAnswer_MarkdownFencedJSON(t *testing.T) {
	client := &fakeChatClient{content: "```json\n{\"score\": 5, \"correctness\": \"Partially Correct\", \"feedback\": \"ok\", \"ideal_answer\": \"x\", \"improvement_tips\": [], \"missing_points\": [\"error handling\"]}\n```"}
	p := NewProvider(client, nil)

	eval, err := p.EvaluateAnswer(context.Background(), "Backend Engineer", "Q", "A")
	require.NoError(t, err)
	assert.Equal(t, 5, eval.Score)
	assert.Equal(t, []string{"error handling"}, eval.MissingPoints)
}

func TestEvaluateAnswer_NonJSONYieldsFallback(t *testing.T) {
	client := &fakeChatClient{content: "I think the answer is pretty good overall!"}
	p := NewProvider(client, nil)

	eval, err := p.EvaluateAnswer(context.Background(), "Backend Engineer", "Q", "A")
	require.NoError(t, err, "malformed output must not surface as an error")
	assert.True(t, eval.IsFallback())
	assert.Equal(t, 0, eval.Score)
	assert.Equal(t, entities.CorrectnessError, eval.Correctness)
	assert.Equal(t, "AI Error in processing response.", eval.Feedback)
	assert.Equal(t, "N/A", eval.IdealAnswer)
	assert.Empty(t, eval.ImprovementTips)
	assert.Empty(t, eval.MissingPoints)
}

func TestEvaluateAnswer_TransportErrorSurfaces(t *testing.T) {
	client := &fakeChatClient{err: errors.New("timeout")}
	p := NewProvider(client, nil)

	_, err := p.EvaluateAnswer(context.Background(), "Backend Engineer", "Q", "A")
	assert.Error(t, err, "transport failures are retryable errors, not fallbacks")
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}
