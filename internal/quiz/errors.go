package quiz

import (
	"errors"
	"fmt"
)

// Content errors. These indicate a broken content pipeline and are never
// recovered from inside the package.
var (
	ErrNoQuestions        = errors.New("bank has no questions")
	ErrMissingQuestionID  = errors.New("question has no id")
	ErrDuplicateQuestion  = errors.New("duplicate question id")
	ErrEmptyChoices       = errors.New("question has no choices")
	ErrInvalidKey         = errors.New("choice key outside A..E")
	ErrDuplicateKey       = errors.New("duplicate choice key")
	ErrNoCorrectChoice    = errors.New("no correct choice")
	ErrMultipleCorrect    = errors.New("more than one correct choice")
	ErrCorrectKeyMismatch = errors.New("correct choice does not match correct key")
)

// Ledger errors.
var (
	ErrUnknownQuestion = errors.New("question is not part of the attempt")
	ErrAlreadyRecorded = errors.New("question already recorded")
)

// ContentError reports which question of a bank is malformed.
type ContentError struct {
	Index      int
	QuestionID string
	Err        error
}

func (e *ContentError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("quiz content: question #%d: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("quiz content: question #%d (%s): %v", e.Index+1, e.QuestionID, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }
