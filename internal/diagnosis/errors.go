package diagnosis

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBank         = errors.New("diagnosis bank has no questions")
	ErrMissingQuestionID = errors.New("question has no id")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrNoOptions         = errors.New("question has no options")
	ErrUnknownTrait      = errors.New("unknown trait")
	ErrNonPositiveWeight = errors.New("weight must be positive")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrOptionOutOfRange  = errors.New("option index out of range")
)

// ContentError reports a malformed diagnosis question.
type ContentError struct {
	QuestionID string
	Option     int // -1 when the problem is not tied to an option
	Err        error
}

func (e *ContentError) Error() string {
	if e.Option >= 0 {
		return fmt.Sprintf("diagnosis content: question %q option %d: %v", e.QuestionID, e.Option, e.Err)
	}
	return fmt.Sprintf("diagnosis content: question %q: %v", e.QuestionID, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }
