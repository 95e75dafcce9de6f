package interview

import (
	"fmt"
	"math"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

const (
	// weakScoreThreshold splits evaluations into weak (<6) and strong (>=6)
	weakScoreThreshold = 6

	maxWeakAreas = 5
	maxStrengths = 3

	// strengthPlaceholder is recorded once per strong evaluation. Strengths are
	// count-derived, not extracted from evaluation content.
	strengthPlaceholder = "Good understanding of tested concepts"
)

// BuildFeedbackReport reduces the evaluations of a completed interview into a
// single report. It is pure: the same input sequence always yields the same
// report. Deduplication keeps first-seen order, so the first-N caps are
// deterministic. Must not be called with an empty slice; the zero-answer case
// short-circuits to a nil report before aggregation.
func BuildFeedbackReport(evals []entities.Evaluation) *entities.FeedbackReport {
	total := 0
	weakAreas := newOrderedSet(maxWeakAreas)
	strengths := newOrderedSet(maxStrengths)

	for _, eval := range evals {
		total += eval.Score
		if eval.Score < weakScoreThreshold {
			for _, point := range eval.MissingPoints {
				weakAreas.add(point)
			}
		} else {
			strengths.add(strengthPlaceholder)
		}
	}

	overall := math.Round(float64(total)/float64(len(evals))*10) / 10

	return &entities.FeedbackReport{
		OverallScore:   overall,
		TotalQuestions: len(evals),
		Summary:        fmt.Sprintf("Candidate scored %.1f/10 on average.", overall),
		WeakAreas:      weakAreas.values(),
		Strengths:      strengths.values(),
	}
}

// orderedSet is an insertion-order-preserving string set with a size cap.
// Entries past the cap are dropped, never reordered.
type orderedSet struct {
	cap   int
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(cap int) *orderedSet {
	return &orderedSet{
		cap:   cap,
		seen:  make(map[string]struct{}),
		items: make([]string, 0, cap),
	}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	if len(s.items) < s.cap {
		s.items = append(s.items, item)
	}
}

func (s *orderedSet) values() []string {
	return s.items
}
