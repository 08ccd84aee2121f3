package quiz

// Outcome is the pass/fail decision for a completed attempt.
type Outcome struct {
	CorrectCount  int  `json:"correctCount"`
	Total         int  `json:"total"`
	PassThreshold int  `json:"passThreshold"`
	Passed        bool `json:"passed"`
}

// EffectiveThreshold caps the configured threshold at the number of
// questions presented so that passing stays reachable.
func EffectiveThreshold(passThreshold, total int) int {
	return min(passThreshold, total)
}

// NewOutcome decides pass/fail for correct answers out of total.
func NewOutcome(correct, total, passThreshold int) Outcome {
	return Outcome{
		CorrectCount:  correct,
		Total:         total,
		PassThreshold: passThreshold,
		Passed:        correct >= EffectiveThreshold(passThreshold, total),
	}
}

// Result is the terminal payload handed to the host when an attempt
// completes.
type Result struct {
	AttemptID string `json:"attemptId"`
	Outcome
	Route Route `json:"route"`
}
