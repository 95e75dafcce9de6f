package interview

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
)

// In-memory repository fakes mirroring the Postgres adapters' contracts,
// including the locked order-index claim and the duplicate-answer constraint.

type memoryInterviewRepo struct {
	mu         sync.Mutex
	interviews map[uuid.UUID]*entities.Interview
	questions  *memoryQuestionRepo
}

func newMemoryInterviewRepo(questions *memoryQuestionRepo) *memoryInterviewRepo {
	return &memoryInterviewRepo{
		interviews: make(map[uuid.UUID]*entities.Interview),
		questions:  questions,
	}
}

func (r *memoryInterviewRepo) Create(_ context.Context, interview *entities.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *interview
	r.interviews[interview.ID] = &copied
	return nil
}

func (r *memoryInterviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interview, ok := r.interviews[id]
	if !ok {
		return nil, entities.ErrInterviewNotFound
	}
	copied := *interview
	return &copied, nil
}

func (r *memoryInterviewRepo) FindByIDAndOwner(_ context.Context, id uuid.UUID, ownerID string) (*entities.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	interview, ok := r.interviews[id]
	if !ok || interview.OwnerID != ownerID {
		return nil, entities.ErrInterviewNotFound
	}
	copied := *interview
	return &copied, nil
}

func (r *memoryInterviewRepo) ListByOwner(_ context.Context, ownerID string) ([]*entities.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Interview
	for _, interview := range r.interviews {
		if interview.OwnerID == ownerID {
			copied := *interview
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result, nil
}

func (r *memoryInterviewRepo) Update(_ context.Context, interview *entities.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interviews[interview.ID]; !ok {
		return entities.ErrInterviewNotFound
	}
	copied := *interview
	r.interviews[interview.ID] = &copied
	return nil
}

func (r *memoryInterviewRepo) CreateQuestionInOrder(
	_ context.Context,
	interviewID uuid.UUID,
	maxQuestions int,
	build func(orderIndex int) *entities.Question,
) (*entities.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	interview, ok := r.interviews[interviewID]
	if !ok {
		return nil, entities.ErrInterviewNotFound
	}
	if interview.IsCompleted() {
		return nil, entities.ErrInterviewCompleted
	}
	orderIndex := interview.QuestionCount + 1
	if orderIndex > maxQuestions {
		return nil, entities.ErrQuestionLimit
	}

	question := build(orderIndex)
	r.questions.store(question)
	interview.QuestionCount = orderIndex
	return question, nil
}

type memoryQuestionRepo struct {
	mu        sync.Mutex
	questions map[uuid.UUID]*entities.Question
}

func newMemoryQuestionRepo() *memoryQuestionRepo {
	return &memoryQuestionRepo{questions: make(map[uuid.UUID]*entities.Question)}
}

func (r *memoryQuestionRepo) store(question *entities.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *question
	r.questions[question.ID] = &copied
}

func (r *memoryQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	question, ok := r.questions[id]
	if !ok {
		return nil, entities.ErrQuestionNotFound
	}
	copied := *question
	return &copied, nil
}

func (r *memoryQuestionRepo) ListByInterview(_ context.Context, interviewID uuid.UUID) ([]*entities.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Question
	for _, question := range r.questions {
		if question.InterviewID == interviewID {
			copied := *question
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderIndex < result[j].OrderIndex
	})
	return result, nil
}

type answerKey struct {
	interviewID uuid.UUID
	questionID  uuid.UUID
}

type memoryAnswerRepo struct {
	mu      sync.Mutex
	answers []*entities.Answer
	byPair  map[answerKey]struct{}
}

func newMemoryAnswerRepo() *memoryAnswerRepo {
	return &memoryAnswerRepo{byPair: make(map[answerKey]struct{})}
}

func (r *memoryAnswerRepo) Create(_ context.Context, answer *entities.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := answerKey{interviewID: answer.InterviewID, questionID: answer.QuestionID}
	if _, ok := r.byPair[key]; ok {
		return entities.ErrDuplicateAnswer
	}
	r.byPair[key] = struct{}{}
	copied := *answer
	r.answers = append(r.answers, &copied)
	return nil
}

func (r *memoryAnswerRepo) ListByInterview(_ context.Context, interviewID uuid.UUID) ([]*entities.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Answer
	for _, answer := range r.answers {
		if answer.InterviewID == interviewID {
			copied := *answer
			result = append(result, &copied)
		}
	}
	return result, nil
}

// stubProvider returns canned content without any I/O
type stubProvider struct {
	mu            sync.Mutex
	questionText  string
	questionErr   error
	evaluation    entities.Evaluation
	evaluationErr error
	generateCalls int
	evaluateCalls int
}

func (p *stubProvider) GenerateQuestion(_ context.Context, role, difficulty, topic string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generateCalls++
	if p.questionErr != nil {
		return "", p.questionErr
	}
	if p.questionText == "" {
		return "Explain the difference between a slice and an array.", nil
	}
	return p.questionText, nil
}

func (p *stubProvider) EvaluateAnswer(_ context.Context, role, question, answer string) (entities.Evaluation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evaluateCalls++
	if p.evaluationErr != nil {
		return entities.Evaluation{}, p.evaluationErr
	}
	return p.evaluation, nil
}
