package quiz

// Ledger is the append-only correctness record of one quiz attempt.
// A question is written at most once; Len() == Total() is the only
// completion signal.
type Ledger struct {
	known   map[string]bool
	results map[string]bool
	order   []string
}

// NewLedger creates a ledger for the given question ids.
func NewLedger(questionIDs []string) *Ledger {
	known := make(map[string]bool, len(questionIDs))
	for _, id := range questionIDs {
		known[id] = true
	}
	return &Ledger{
		known:   known,
		results: make(map[string]bool, len(known)),
	}
}

// Record writes the correctness of a question. Unknown ids and second
// writes are rejected and leave the ledger untouched.
func (l *Ledger) Record(questionID string, correct bool) error {
	if !l.known[questionID] {
		return ErrUnknownQuestion
	}
	if _, ok := l.results[questionID]; ok {
		return ErrAlreadyRecorded
	}
	l.results[questionID] = correct
	l.order = append(l.order, questionID)
	return nil
}

// Has reports whether questionID has been recorded.
func (l *Ledger) Has(questionID string) bool {
	_, ok := l.results[questionID]
	return ok
}

// Result returns the recorded correctness of questionID.
func (l *Ledger) Result(questionID string) (correct, ok bool) {
	correct, ok = l.results[questionID]
	return correct, ok
}

// Len returns the number of recorded questions.
func (l *Ledger) Len() int { return len(l.results) }

// Total returns the number of questions in the attempt.
func (l *Ledger) Total() int { return len(l.known) }

// Complete reports whether every question has been recorded.
func (l *Ledger) Complete() bool { return l.Total() > 0 && l.Len() == l.Total() }

// CorrectCount returns the number of questions recorded as correct.
func (l *Ledger) CorrectCount() int {
	n := 0
	for _, ok := range l.results {
		if ok {
			n++
		}
	}
	return n
}

// Order returns the question ids in the order they were recorded.
func (l *Ledger) Order() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}
