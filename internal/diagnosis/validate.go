package diagnosis

// ValidateBank checks a diagnosis bank for content errors.
func ValidateBank(questions []Question) error {
	if len(questions) == 0 {
		return &ContentError{Option: -1, Err: ErrEmptyBank}
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return &ContentError{Option: -1, Err: ErrMissingQuestionID}
		}
		if seen[q.ID] {
			return &ContentError{QuestionID: q.ID, Option: -1, Err: ErrDuplicateQuestion}
		}
		seen[q.ID] = true

		if len(q.Options) == 0 {
			return &ContentError{QuestionID: q.ID, Option: -1, Err: ErrNoOptions}
		}
		for i, opt := range q.Options {
			for trait, w := range opt.Weights {
				if !trait.Valid() {
					return &ContentError{QuestionID: q.ID, Option: i, Err: ErrUnknownTrait}
				}
				if w <= 0 {
					return &ContentError{QuestionID: q.ID, Option: i, Err: ErrNonPositiveWeight}
				}
			}
		}
	}
	return nil
}
