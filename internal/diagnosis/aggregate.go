package diagnosis

import "fmt"

// Aggregate folds the chosen option of every answered question into a
// trait score map. Unanswered questions are skipped and traits missing
// from an option's weights are left untouched.
//
// An answer that names an unknown question or an out-of-range option is
// a caller error and is returned as such.
func Aggregate(questions []Question, answers Answers) (Scores, error) {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	for id := range answers {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("answer for unknown question %q: %w", id, ErrUnknownQuestion)
		}
	}

	scores := make(Scores)
	for _, q := range questions {
		idx, answered := answers[q.ID]
		if !answered {
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			return nil, fmt.Errorf("question %q: option %d of %d: %w", q.ID, idx, len(q.Options), ErrOptionOutOfRange)
		}
		for trait, w := range q.Options[idx].Weights {
			scores[trait] += w
		}
	}
	return scores, nil
}
