package quiz

import (
	"slices"
	"strings"
)

// Validate checks the bank's questions for content errors. The first
// problem found is returned as a *ContentError.
func Validate(b Bank) error {
	if len(b.Questions) == 0 {
		return &ContentError{Index: -1, Err: ErrNoQuestions}
	}

	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		if err := validateQuestion(q); err != nil {
			return &ContentError{Index: i, QuestionID: q.ID, Err: err}
		}
		if seen[q.ID] {
			return &ContentError{Index: i, QuestionID: q.ID, Err: ErrDuplicateQuestion}
		}
		seen[q.ID] = true
	}
	return nil
}

func validateQuestion(q Question) error {
	if q.ID == "" {
		return ErrMissingQuestionID
	}
	if len(q.Choices) == 0 {
		return ErrEmptyChoices
	}

	keys := make(map[Key]bool, len(q.Choices))
	var correct []Choice
	for _, c := range q.Choices {
		if !c.Key.Valid() {
			return ErrInvalidKey
		}
		if keys[c.Key] {
			return ErrDuplicateKey
		}
		keys[c.Key] = true
		if c.IsCorrect {
			correct = append(correct, c)
		}
	}

	switch {
	case len(correct) == 0:
		return ErrNoCorrectChoice
	case len(correct) > 1:
		return ErrMultipleCorrect
	case correct[0].Key != q.CorrectKey:
		return ErrCorrectKeyMismatch
	}
	return nil
}

// normalize returns a copy of the bank with every question's choices in
// canonical key order.
func normalize(b Bank) Bank {
	out := b
	out.Questions = make([]Question, len(b.Questions))
	for i, q := range b.Questions {
		q.Choices = slices.Clone(q.Choices)
		slices.SortStableFunc(q.Choices, func(a, b Choice) int {
			return strings.Compare(string(a.Key), string(b.Key))
		})
		out.Questions[i] = q
	}
	return out
}
