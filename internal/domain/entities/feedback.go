package entities

import (
	"database/sql/driver"
	"encoding/json"
)

// FeedbackReport is the aggregated result of a completed interview, produced
// exactly once on completion and stored on the interview row as JSONB.
type FeedbackReport struct {
	OverallScore   float64  `json:"overall_score"`
	TotalQuestions int      `json:"total_questions"`
	Summary        string   `json:"summary"`
	WeakAreas      []string `json:"weak_areas"`
	Strengths      []string `json:"strengths"`
}

// Scan implements sql.Scanner interface for GORM
func (r *FeedbackReport) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, r)
}

// Value implements driver.Valuer interface for GORM
func (r FeedbackReport) Value() (driver.Value, error) {
	return json.Marshal(r)
}
