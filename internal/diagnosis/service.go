package diagnosis

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the outcome of one diagnosis run.
type Result struct {
	RunID        string    `json:"runId"`
	Scores       Scores    `json:"traitScoreMap"`
	PatternID    PatternID `json:"patternId"`
	PatternLabel string    `json:"patternLabel"`
	Description  string    `json:"description"`
	Dominance    Dominance `json:"dominance"`
	Answered     int       `json:"answered"`
	Total        int       `json:"total"`
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used by the service.
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service validates a bank, aggregates answers and classifies the result.
// It holds no per-run state and is safe for concurrent use.
type Service struct {
	log *zap.Logger
}

// NewService creates a diagnosis service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Diagnose runs a full diagnosis over bank with the given answers.
// Content errors in bank are returned as *ContentError.
func (s *Service) Diagnose(bank []Question, answers Answers) (*Result, error) {
	if err := ValidateBank(bank); err != nil {
		s.log.Error("diagnosis bank rejected", zap.Error(err))
		return nil, err
	}

	scores, err := Aggregate(bank, answers)
	if err != nil {
		return nil, err
	}

	dom := Dominate(scores)
	id := dom.Pattern()
	p, _ := LookupPattern(id)

	res := &Result{
		RunID:        uuid.NewString(),
		Scores:       scores.Full(),
		PatternID:    id,
		PatternLabel: p.Label,
		Description:  p.Description,
		Dominance:    dom,
		Answered:     countAnswered(bank, answers),
		Total:        len(bank),
	}

	s.log.Info("diagnosis classified",
		zap.String("run", res.RunID),
		zap.Int("pattern", int(id)),
		zap.String("label", p.Label),
		zap.Int("answered", res.Answered),
		zap.Int("total", res.Total),
	)
	return res, nil
}

func countAnswered(bank []Question, answers Answers) int {
	n := 0
	for _, q := range bank {
		if _, ok := answers[q.ID]; ok {
			n++
		}
	}
	return n
}
