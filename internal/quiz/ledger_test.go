package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_CompleteOnlyWhenEveryQuestionRecorded(t *testing.T) {
	ids := []string{"q1", "q2", "q3", "q4"}

	// Every write order must reach completion exactly on the last write.
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	for _, order := range orders {
		l := NewLedger(ids)
		for i, idx := range order {
			assert.False(t, l.Complete())
			require.NoError(t, l.Record(ids[idx], idx%2 == 0))
			assert.Equal(t, i+1, l.Len())
		}
		assert.True(t, l.Complete())
		assert.Equal(t, 2, l.CorrectCount())
	}
}

func TestLedger_AppendOnly(t *testing.T) {
	l := NewLedger([]string{"q1", "q2"})
	require.NoError(t, l.Record("q1", true))

	assert.ErrorIs(t, l.Record("q1", false), ErrAlreadyRecorded)
	correct, ok := l.Result("q1")
	assert.True(t, ok)
	assert.True(t, correct, "a recorded answer is never overwritten")
	assert.Equal(t, 1, l.Len())
}

func TestLedger_UnknownQuestion(t *testing.T) {
	l := NewLedger([]string{"q1"})
	assert.ErrorIs(t, l.Record("nope", true), ErrUnknownQuestion)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Complete())
}

func TestLedger_Order(t *testing.T) {
	l := NewLedger([]string{"q1", "q2", "q3"})
	require.NoError(t, l.Record("q2", true))
	require.NoError(t, l.Record("q1", false))
	assert.Equal(t, []string{"q2", "q1"}, l.Order())
	assert.True(t, l.Has("q1"))
	assert.False(t, l.Has("q3"))
}

func TestEffectiveThreshold(t *testing.T) {
	tests := []struct {
		threshold, total, want int
	}{
		{2, 3, 2},
		{3, 3, 3},
		{7, 3, 3},
		{0, 3, 0},
	}
	for _, tt := range tests {
		got := EffectiveThreshold(tt.threshold, tt.total)
		if got != tt.want {
			t.Errorf("EffectiveThreshold(%d, %d) = %d, want %d", tt.threshold, tt.total, got, tt.want)
		}
	}
}

func TestLock_Transitions(t *testing.T) {
	var l Lock
	assert.Equal(t, Idle, l.State())
	assert.True(t, l.TryAcquire())
	assert.Equal(t, Locked, l.State())
	assert.False(t, l.TryAcquire(), "acquire while locked is a no-op")
	assert.Equal(t, Locked, l.State())
	l.Release()
	assert.Equal(t, Idle, l.State())
	assert.Equal(t, "idle", l.State().String())
}
