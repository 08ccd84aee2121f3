package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coinwise/internal/quiz"
)

func TestAll_Valid(t *testing.T) {
	lessons := All()
	require.Len(t, lessons, 3)

	for i, l := range lessons {
		require.NoError(t, quiz.Validate(l.Test), l.ID)
		assert.Equal(t, l.ID, l.Test.LessonID)
		assert.LessOrEqual(t, l.Test.PassThreshold, len(l.Test.Questions), l.ID)

		last := i == len(lessons)-1
		assert.Equal(t, last, l.Test.IsLast, l.ID)
		if !last {
			assert.Equal(t, lessons[i+1].ID, l.Test.NextLessonID, l.ID)
		}
	}
}

func TestGet(t *testing.T) {
	l, ok := Get("compound-interest")
	require.True(t, ok)
	assert.Equal(t, "Compound Interest", l.Title)

	_, ok = Get("crypto-moonshots")
	assert.False(t, ok)

	_, err := Bank("crypto-moonshots")
	assert.Error(t, err)
}

func TestMCQ_KeysAndCorrect(t *testing.T) {
	q := mcq("x", "?", quiz.KeyB, "one", "two", "three")
	require.Len(t, q.Choices, 3)
	assert.Equal(t, quiz.KeyC, q.Choices[2].Key)
	c, ok := q.Choice(quiz.KeyB)
	require.True(t, ok)
	assert.True(t, c.IsCorrect)
	assert.Equal(t, "x-B", c.ID)
}
