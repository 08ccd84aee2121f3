package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualScheduler records AfterFunc calls and fires them on demand.
type manualScheduler struct {
	calls []*scheduledCall
}

type scheduledCall struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	c := &scheduledCall{delay: d, fn: f}
	s.calls = append(s.calls, c)
	return func() bool {
		if c.stopped || c.fired {
			return false
		}
		c.stopped = true
		return true
	}
}

func (s *manualScheduler) fireAll() {
	for _, c := range s.calls {
		if c.stopped || c.fired {
			continue
		}
		c.fired = true
		c.fn()
	}
}

func question(id string, correct Key) Question {
	q := Question{ID: id, Prompt: "Prompt " + id, CorrectKey: correct}
	for _, k := range []Key{KeyC, KeyA, KeyB} {
		q.Choices = append(q.Choices, Choice{
			ID:        id + "-" + string(k),
			Key:       k,
			Label:     "Option " + string(k),
			IsCorrect: k == correct,
		})
	}
	return q
}

func testBank(threshold int, correct ...Key) Bank {
	b := Bank{
		LessonID:      "lesson-1",
		TestID:        "test-1",
		Title:         "Budgeting basics",
		NextLessonID:  "lesson-2",
		PassThreshold: threshold,
	}
	for i, k := range correct {
		b.Questions = append(b.Questions, question(string(rune('a'+i)), k))
	}
	return b
}

// answer runs select -> submit -> advance for the current question.
func answer(t *testing.T, m *Machine, key Key) Feedback {
	t.Helper()
	q := m.Current()
	require.True(t, m.SelectOption(q.ID, key), "select %s on %s", key, q.ID)
	fb, ok := m.SubmitAnswer()
	require.True(t, ok, "submit on %s", q.ID)
	require.True(t, m.Advance(), "advance on %s", q.ID)
	m.MarkRendered(m.Current().ID)
	return fb
}

func TestMachine_EndToEndPassAtThreshold(t *testing.T) {
	var results []Result
	m, err := NewMachine(testBank(2, KeyA, KeyB, KeyC),
		WithScheduler(&manualScheduler{}),
		OnComplete(func(r Result) { results = append(results, r) }))
	require.NoError(t, err)

	assert.Equal(t, State{Phase: PhasePresenting, Index: 0}, m.State())

	assert.True(t, answer(t, m, KeyA).Correct)
	assert.False(t, answer(t, m, KeyA).Correct)
	assert.True(t, answer(t, m, KeyC).Correct)

	require.Len(t, results, 1)
	got := results[0]
	assert.Equal(t, 2, got.CorrectCount)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.PassThreshold)
	assert.True(t, got.Passed)
	assert.Equal(t, "lesson-2", got.Route.NextLessonID)
	assert.Equal(t, m.AttemptID(), got.AttemptID)
	assert.Equal(t, PhaseCompleted, m.State().Phase)
	assert.Equal(t, 2, m.State().Index, "last question has no index transition")
}

func TestMachine_CompletionFiresOnce(t *testing.T) {
	calls := 0
	m, err := NewMachine(testBank(1, KeyA, KeyB),
		WithScheduler(nil),
		OnComplete(func(Result) { calls++ }))
	require.NoError(t, err)

	m.Sync()
	assert.Equal(t, 0, calls, "watcher must not fire before the ledger is full")

	answer(t, m, KeyA)
	answer(t, m, KeyB)
	for i := 0; i < 5; i++ {
		m.Sync()
	}
	assert.Equal(t, 1, calls)
	assert.False(t, m.Advance(), "advance after completion is dropped")
	assert.Equal(t, 1, calls)
}

func TestMachine_DuplicateAdvanceDropped(t *testing.T) {
	m, err := NewMachine(testBank(1, KeyA, KeyB, KeyC), WithScheduler(nil))
	require.NoError(t, err)

	first := m.Current()
	require.True(t, m.SelectOption(first.ID, KeyA))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)

	require.True(t, m.Advance())
	assert.False(t, m.Advance(), "second advance before render is dropped")
	assert.Equal(t, 1, m.LedgerLen())
	assert.Equal(t, 1, m.State().Index)

	// The new question can be answered while the lock is held, but it
	// cannot be advanced until it has rendered.
	second := m.Current()
	require.True(t, m.SelectOption(second.ID, KeyB))
	_, ok = m.SubmitAnswer()
	require.True(t, ok)
	assert.False(t, m.Advance())

	m.MarkRendered(second.ID)
	assert.True(t, m.Advance())
	assert.Equal(t, 2, m.LedgerLen())
}

func TestMachine_OutOfOrderCallsAreNoOps(t *testing.T) {
	m, err := NewMachine(testBank(1, KeyA, KeyB), WithScheduler(nil))
	require.NoError(t, err)
	q := m.Current()

	_, ok := m.SubmitAnswer()
	assert.False(t, ok, "submit without selection")
	assert.False(t, m.Advance(), "advance before submit")

	assert.False(t, m.SelectOption("other", KeyA), "select on a question that is not current")
	assert.False(t, m.SelectOption(q.ID, KeyE), "select a key the question does not have")

	require.True(t, m.SelectOption(q.ID, KeyB))
	require.True(t, m.SelectOption(q.ID, KeyA), "selection may change before submit")
	fb, ok := m.SubmitAnswer()
	require.True(t, ok)
	assert.Equal(t, KeyA, fb.Chosen)
	assert.True(t, fb.Correct)

	assert.False(t, m.SelectOption(q.ID, KeyB), "choices are immutable after submit")
	_, ok = m.SubmitAnswer()
	assert.False(t, ok, "double submit")

	sel, _ := m.Selection()
	assert.Equal(t, KeyA, sel)
	assert.Equal(t, 0, m.LedgerLen(), "select and submit never touch the ledger")
}

func TestMachine_PassThresholdClamp(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		answers   []Key
		passed    bool
	}{
		{"threshold above total, all correct", 5, []Key{KeyA, KeyB, KeyC}, true},
		{"threshold above total, one wrong", 5, []Key{KeyA, KeyB, KeyA}, false},
		{"threshold equals total", 3, []Key{KeyA, KeyB, KeyC}, true},
		{"threshold below total", 1, []Key{KeyB, KeyA, KeyA}, false},
		{"zero threshold", 0, []Key{KeyB, KeyA, KeyA}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Result
			m, err := NewMachine(testBank(tt.threshold, KeyA, KeyB, KeyC),
				WithScheduler(nil),
				OnComplete(func(r Result) { got = r }))
			require.NoError(t, err)
			for _, k := range tt.answers {
				answer(t, m, k)
			}
			assert.Equal(t, tt.passed, got.Passed)
			assert.Equal(t, tt.threshold, got.PassThreshold)
		})
	}
}

func TestMachine_RevealWindow(t *testing.T) {
	sched := &manualScheduler{}
	var ended []string
	m, err := NewMachine(testBank(1, KeyA, KeyB),
		WithScheduler(sched),
		WithRevealDelay(250*time.Millisecond),
		OnRevealEnd(func(id string) { ended = append(ended, id) }))
	require.NoError(t, err)

	q := m.Current()
	require.True(t, m.SelectOption(q.ID, KeyA))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)

	require.Len(t, sched.calls, 1)
	assert.Equal(t, 250*time.Millisecond, sched.calls[0].delay)
	assert.True(t, m.Revealing())

	sched.fireAll()
	assert.False(t, m.Revealing())
	assert.Equal(t, []string{q.ID}, ended)
}

func TestMachine_AdvanceDuringRevealCancelsTimer(t *testing.T) {
	sched := &manualScheduler{}
	revealEnds := 0
	m, err := NewMachine(testBank(1, KeyA, KeyB),
		WithScheduler(sched),
		OnRevealEnd(func(string) { revealEnds++ }))
	require.NoError(t, err)

	q := m.Current()
	require.True(t, m.SelectOption(q.ID, KeyA))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)
	require.True(t, m.Advance(), "reveal does not gate advancing")

	sched.fireAll()
	assert.Equal(t, 0, revealEnds)
	assert.True(t, sched.calls[0].stopped)
}

func TestMachine_CloseStopsCallbacks(t *testing.T) {
	sched := &manualScheduler{}
	revealEnds, completions := 0, 0
	m, err := NewMachine(testBank(1, KeyA),
		WithScheduler(sched),
		OnRevealEnd(func(string) { revealEnds++ }),
		OnComplete(func(Result) { completions++ }))
	require.NoError(t, err)

	q := m.Current()
	require.True(t, m.SelectOption(q.ID, KeyA))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)

	m.Close()
	m.Close()
	sched.fireAll()

	assert.Equal(t, 0, revealEnds)
	assert.False(t, m.Advance())
	m.Sync()
	assert.Equal(t, 0, completions)
	assert.False(t, m.SelectOption(q.ID, KeyB))
}

func TestMachine_TimerSchedulerRevealEnds(t *testing.T) {
	done := make(chan string, 1)
	m, err := NewMachine(testBank(1, KeyA, KeyB),
		WithRevealDelay(5*time.Millisecond),
		OnRevealEnd(func(id string) { done <- id }))
	require.NoError(t, err)
	defer m.Close()

	q := m.Current()
	require.True(t, m.SelectOption(q.ID, KeyB))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)

	select {
	case id := <-done:
		assert.Equal(t, q.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("reveal window never ended")
	}
	assert.False(t, m.Revealing())
}

func TestMachine_HostDrivenReveal(t *testing.T) {
	m, err := NewMachine(testBank(1, KeyA, KeyB), WithScheduler(nil))
	require.NoError(t, err)

	q := m.Current()
	require.True(t, m.SelectOption(q.ID, KeyA))
	_, ok := m.SubmitAnswer()
	require.True(t, ok)
	assert.True(t, m.Revealing())

	m.EndReveal()
	assert.False(t, m.Revealing())
}

func TestMachine_ChoicesSortedByKey(t *testing.T) {
	m, err := NewMachine(testBank(1, KeyB), WithScheduler(nil))
	require.NoError(t, err)

	var keys []Key
	for _, c := range m.Current().Choices {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []Key{KeyA, KeyB, KeyC}, keys)
}

func TestNewMachine_ContentErrors(t *testing.T) {
	valid := func() Question { return question("q", KeyA) }

	tests := []struct {
		name   string
		mutate func(*Bank)
		want   error
	}{
		{"no questions", func(b *Bank) { b.Questions = nil }, ErrNoQuestions},
		{"missing id", func(b *Bank) { b.Questions[0].ID = "" }, ErrMissingQuestionID},
		{"empty choices", func(b *Bank) { b.Questions[0].Choices = nil }, ErrEmptyChoices},
		{"invalid key", func(b *Bank) { b.Questions[0].Choices[1].Key = "F" }, ErrInvalidKey},
		{"duplicate key", func(b *Bank) { b.Questions[0].Choices[1].Key = KeyC }, ErrDuplicateKey},
		{"no correct choice", func(b *Bank) {
			for i := range b.Questions[0].Choices {
				b.Questions[0].Choices[i].IsCorrect = false
			}
		}, ErrNoCorrectChoice},
		{"two correct choices", func(b *Bank) {
			for i := range b.Questions[0].Choices {
				b.Questions[0].Choices[i].IsCorrect = true
			}
		}, ErrMultipleCorrect},
		{"correct key mismatch", func(b *Bank) { b.Questions[0].CorrectKey = KeyB }, ErrCorrectKeyMismatch},
		{"duplicate question", func(b *Bank) { b.Questions = append(b.Questions, valid()) }, ErrDuplicateQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bank{TestID: "t", PassThreshold: 1, Questions: []Question{valid()}}
			tt.mutate(&b)

			m, err := NewMachine(b)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var ce *ContentError
			require.True(t, errors.As(err, &ce))
		})
	}
}
