// Package curriculum holds the built-in lessons and their end-of-lesson
// tests.
package curriculum

import (
	"fmt"

	"github.com/abhisek/coinwise/internal/quiz"
)

// Lesson is a unit of study followed by a graded test.
type Lesson struct {
	ID      string
	Title   string
	Summary string
	Test    quiz.Bank
}

var lessonsByID map[string]int

func init() {
	lessonsByID = make(map[string]int, len(seedLessons))
	for i, l := range seedLessons {
		lessonsByID[l.ID] = i
	}
}

// All returns every lesson in study order.
func All() []Lesson {
	out := make([]Lesson, len(seedLessons))
	copy(out, seedLessons)
	return out
}

// Get returns the lesson with the given id.
func Get(id string) (Lesson, bool) {
	i, ok := lessonsByID[id]
	if !ok {
		return Lesson{}, false
	}
	return seedLessons[i], true
}

// Bank returns the test bank of the lesson with the given id.
func Bank(id string) (quiz.Bank, error) {
	l, ok := Get(id)
	if !ok {
		return quiz.Bank{}, fmt.Errorf("unknown lesson %q", id)
	}
	return l.Test, nil
}

// mcq builds a question whose choices are keyed A, B, C... in order.
func mcq(id, prompt string, correct quiz.Key, labels ...string) quiz.Question {
	keys := quiz.AllKeys()
	choices := make([]quiz.Choice, len(labels))
	for i, label := range labels {
		choices[i] = quiz.Choice{
			ID:        fmt.Sprintf("%s-%s", id, keys[i]),
			Key:       keys[i],
			Label:     label,
			IsCorrect: keys[i] == correct,
		}
	}
	return quiz.Question{ID: id, Prompt: prompt, Choices: choices, CorrectKey: correct}
}
