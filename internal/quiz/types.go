package quiz

// Key identifies a choice within a question.
type Key string

const (
	KeyA Key = "A"
	KeyB Key = "B"
	KeyC Key = "C"
	KeyD Key = "D"
	KeyE Key = "E"
)

// AllKeys returns the choice alphabet in canonical order.
func AllKeys() []Key {
	return []Key{KeyA, KeyB, KeyC, KeyD, KeyE}
}

// Valid reports whether k is one of A..E.
func (k Key) Valid() bool {
	switch k {
	case KeyA, KeyB, KeyC, KeyD, KeyE:
		return true
	}
	return false
}

// Choice is a single answer option.
type Choice struct {
	ID        string `json:"id"`
	Key       Key    `json:"key"`
	Label     string `json:"label"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a multiple-choice question with exactly one correct choice.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Choices    []Choice `json:"choices"`
	CorrectKey Key      `json:"correctChoiceKey"`
}

// Choice returns the choice with key k.
func (q Question) Choice(k Key) (Choice, bool) {
	for _, c := range q.Choices {
		if c.Key == k {
			return c, true
		}
	}
	return Choice{}, false
}

// Bank is an ordered question set for one test, plus the routing
// identifiers that are forwarded with the outcome.
type Bank struct {
	LessonID      string
	TestID        string
	Title         string
	NextLessonID  string
	IsLast        bool
	PassThreshold int
	Questions     []Question
}

// Route carries the identifiers the host uses to navigate after a quiz.
// The machine never interprets them.
type Route struct {
	LessonID     string `json:"lessonId"`
	TestID       string `json:"testId"`
	Title        string `json:"title"`
	NextLessonID string `json:"nextLessonId,omitempty"`
	IsLast       bool   `json:"isLast"`
}

// Route returns the pass-through identifiers of the bank.
func (b Bank) Route() Route {
	return Route{
		LessonID:     b.LessonID,
		TestID:       b.TestID,
		Title:        b.Title,
		NextLessonID: b.NextLessonID,
		IsLast:       b.IsLast,
	}
}

// QuestionIDs returns the ids of the bank's questions in order.
func (b Bank) QuestionIDs() []string {
	ids := make([]string, len(b.Questions))
	for i, q := range b.Questions {
		ids[i] = q.ID
	}
	return ids
}
