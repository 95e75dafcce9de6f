package ai

import (
	"encoding/json"
	"strings"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// Parser handles parsing and validation of LLM evaluation responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseEvaluation parses the JSON evaluation returned by the model. On any
// parse failure it returns the deterministic fallback evaluation and ok=false
// instead of an error; a low-confidence score is preferable to failing the
// whole submission.
func (p *Parser) ParseEvaluation(content string) (entities.Evaluation, bool) {
	content = extractJSON(content)

	var eval entities.Evaluation
	if err := json.Unmarshal([]byte(content), &eval); err != nil {
		return entities.FallbackEvaluation(), false
	}

	// Nil slices serialize as null; normalize to empty so stored documents
	// always carry arrays.
	if eval.ImprovementTips == nil {
		eval.ImprovementTips = []string{}
	}
	if eval.MissingPoints == nil {
		eval.MissingPoints = []string{}
	}

	return eval, true
}

// extractJSON strips markdown code fences the model might wrap around JSON
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
