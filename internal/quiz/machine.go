package quiz

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRevealDelay is how long correctness stays revealed after a submit.
const DefaultRevealDelay = 1100 * time.Millisecond

// Phase is the coarse state of a Machine.
type Phase int

const (
	PhasePresenting Phase = iota // Showing question Index
	PhaseCompleted               // Every question recorded
)

// State is the machine state: Presenting(Index) or Completed.
type State struct {
	Phase Phase
	Index int
}

func (s State) String() string {
	if s.Phase == PhaseCompleted {
		return "completed"
	}
	return fmt.Sprintf("presenting(%d)", s.Index)
}

// Feedback describes a submitted answer.
type Feedback struct {
	QuestionID string
	Chosen     Key
	CorrectKey Key
	Correct    bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for dropped calls and transitions.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithScheduler sets the scheduler for the reveal window. A nil scheduler
// leaves ending the reveal to the host via EndReveal.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.scheduler = s }
}

// WithRevealDelay overrides DefaultRevealDelay.
func WithRevealDelay(d time.Duration) Option {
	return func(m *Machine) { m.revealDelay = d }
}

// WithAttemptID overrides the generated attempt id.
func WithAttemptID(id string) Option {
	return func(m *Machine) { m.attemptID = id }
}

// OnComplete registers the terminal action. It runs at most once.
func OnComplete(fn func(Result)) Option {
	return func(m *Machine) { m.onComplete = fn }
}

// OnRevealEnd registers a callback for the end of a reveal window.
func OnRevealEnd(fn func(questionID string)) Option {
	return func(m *Machine) { m.onRevealEnd = fn }
}

// Machine presents a bank one question at a time and decides a single
// pass/fail outcome once every question has been recorded.
//
// Calls made out of order (submit before select, advance before submit,
// a second advance before the next question rendered, anything after
// Close) are dropped and reported as false, never as errors.
type Machine struct {
	mu sync.Mutex

	bank      Bank
	attemptID string
	index     int

	selection Key
	submitted bool
	correct   bool
	revealing bool

	stopReveal func() bool
	advance    Lock
	ledger     *Ledger

	navigated bool
	outcome   Outcome
	closed    bool

	revealDelay time.Duration
	scheduler   Scheduler
	onComplete  func(Result)
	onRevealEnd func(string)
	log         *zap.Logger
}

// NewMachine validates the bank and returns a machine in Presenting(0).
// A malformed bank is returned as a *ContentError.
func NewMachine(bank Bank, opts ...Option) (*Machine, error) {
	if err := Validate(bank); err != nil {
		return nil, err
	}

	m := &Machine{
		bank:        normalize(bank),
		revealDelay: DefaultRevealDelay,
		scheduler:   TimerScheduler(),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.attemptID == "" {
		m.attemptID = uuid.New().String()
	}
	m.ledger = NewLedger(m.bank.QuestionIDs())
	m.log = m.log.With(zap.String("attempt", m.attemptID), zap.String("test", bank.TestID))
	m.log.Debug("quiz attempt started", zap.Int("questions", len(m.bank.Questions)))
	return m, nil
}

// AttemptID returns the id of this attempt.
func (m *Machine) AttemptID() string { return m.attemptID }

// Bank returns the normalized bank.
func (m *Machine) Bank() Bank { return m.bank }

// Total returns the number of questions.
func (m *Machine) Total() int { return len(m.bank.Questions) }

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Machine) stateLocked() State {
	if m.ledger.Complete() {
		return State{Phase: PhaseCompleted, Index: m.index}
	}
	return State{Phase: PhasePresenting, Index: m.index}
}

// Current returns the question at the current index.
func (m *Machine) Current() Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bank.Questions[m.index]
}

// Selection returns the tentative selection for the current question.
func (m *Machine) Selection() (Key, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection, m.selection != ""
}

// Submitted reports whether the current question has been submitted.
func (m *Machine) Submitted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitted
}

// Revealing reports whether the reveal window of the current question is open.
func (m *Machine) Revealing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revealing
}

// LedgerLen returns the number of recorded questions.
func (m *Machine) LedgerLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger.Len()
}

// Outcome returns the outcome once the attempt has completed.
func (m *Machine) Outcome() (Outcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome, m.navigated
}

// SelectOption records a tentative selection for the current question.
// It is a no-op once the question has been submitted.
func (m *Machine) SelectOption(questionID string, key Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.ledger.Complete() {
		return m.drop("select", "attempt finished")
	}
	q := m.bank.Questions[m.index]
	if q.ID != questionID {
		return m.drop("select", "not the current question", zap.String("question", questionID))
	}
	if m.submitted {
		return m.drop("select", "question already submitted", zap.String("question", questionID))
	}
	if _, ok := q.Choice(key); !ok {
		return m.drop("select", "no such choice", zap.String("question", questionID), zap.String("key", string(key)))
	}
	m.selection = key
	return true
}

// SubmitAnswer grades the current selection and opens the reveal window.
// It needs a selection and is a no-op for an already submitted question.
func (m *Machine) SubmitAnswer() (Feedback, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.ledger.Complete() {
		return Feedback{}, m.drop("submit", "attempt finished")
	}
	if m.submitted {
		return Feedback{}, m.drop("submit", "question already submitted")
	}
	if m.selection == "" {
		return Feedback{}, m.drop("submit", "nothing selected")
	}

	q := m.bank.Questions[m.index]
	m.correct = m.selection == q.CorrectKey
	m.submitted = true
	m.revealing = true

	if m.scheduler != nil {
		id := q.ID
		m.stopReveal = m.scheduler.AfterFunc(m.revealDelay, func() {
			m.endReveal(id)
		})
	}

	m.log.Debug("answer submitted",
		zap.String("question", q.ID),
		zap.String("chosen", string(m.selection)),
		zap.Bool("correct", m.correct))

	return Feedback{
		QuestionID: q.ID,
		Chosen:     m.selection,
		CorrectKey: q.CorrectKey,
		Correct:    m.correct,
	}, true
}

// EndReveal closes the reveal window of the current question. Hosts that
// run without a Scheduler call it when their own timer fires.
func (m *Machine) EndReveal() {
	m.mu.Lock()
	id := m.bank.Questions[m.index].ID
	m.mu.Unlock()
	m.endReveal(id)
}

func (m *Machine) endReveal(questionID string) {
	m.mu.Lock()
	if m.closed || !m.revealing || m.bank.Questions[m.index].ID != questionID {
		m.mu.Unlock()
		return
	}
	m.revealing = false
	m.stopReveal = nil
	cb := m.onRevealEnd
	m.mu.Unlock()

	if cb != nil {
		cb(questionID)
	}
}

// Advance records the submitted answer in the ledger and moves to the next
// question. A second call before the next question is rendered is dropped.
// On the last question no index transition happens; completion detection
// fires the terminal action instead.
func (m *Machine) Advance() bool {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return m.drop("advance", "machine closed")
	}
	if !m.submitted {
		m.mu.Unlock()
		return m.drop("advance", "question not submitted")
	}
	if !m.advance.TryAcquire() {
		m.mu.Unlock()
		return m.drop("advance", "advance already in progress")
	}

	q := m.bank.Questions[m.index]
	if err := m.ledger.Record(q.ID, m.correct); err != nil {
		m.mu.Unlock()
		return m.drop("advance", err.Error(), zap.String("question", q.ID))
	}

	if m.index < len(m.bank.Questions)-1 {
		m.cancelRevealLocked()
		m.index++
		m.selection = ""
		m.submitted = false
		m.correct = false
		m.log.Debug("advanced", zap.Int("index", m.index))
	}

	res, fire := m.checkCompletionLocked()
	cb := m.onComplete
	m.mu.Unlock()

	if fire && cb != nil {
		cb(res)
	}
	return true
}

// MarkRendered tells the machine the host has rendered questionID, which
// releases the advance lock taken by the previous Advance.
func (m *Machine) MarkRendered(questionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.advance.State() != Locked {
		return
	}
	q := m.bank.Questions[m.index]
	if q.ID != questionID || m.ledger.Has(q.ID) {
		return
	}
	m.advance.Release()
}

// Sync runs completion detection. It is safe to call any number of
// times; the terminal action fires at most once.
func (m *Machine) Sync() {
	m.mu.Lock()
	res, fire := m.checkCompletionLocked()
	cb := m.onComplete
	m.mu.Unlock()

	if fire && cb != nil {
		cb(res)
	}
}

func (m *Machine) checkCompletionLocked() (Result, bool) {
	if m.navigated || m.closed || !m.ledger.Complete() {
		return Result{}, false
	}
	m.navigated = true
	m.cancelRevealLocked()
	m.outcome = NewOutcome(m.ledger.CorrectCount(), m.ledger.Total(), m.bank.PassThreshold)

	m.log.Info("quiz attempt completed",
		zap.Int("correct", m.outcome.CorrectCount),
		zap.Int("total", m.outcome.Total),
		zap.Int("threshold", m.outcome.PassThreshold),
		zap.Bool("passed", m.outcome.Passed))

	return Result{
		AttemptID: m.attemptID,
		Outcome:   m.outcome,
		Route:     m.bank.Route(),
	}, true
}

// Close tears the machine down. A pending reveal timer is stopped and no
// callback fires afterwards.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.cancelRevealLocked()
	m.log.Debug("quiz attempt closed", zap.Int("recorded", m.ledger.Len()))
}

func (m *Machine) cancelRevealLocked() {
	if m.stopReveal != nil {
		m.stopReveal()
		m.stopReveal = nil
	}
	m.revealing = false
}

func (m *Machine) drop(op, reason string, fields ...zap.Field) bool {
	m.log.Debug("call dropped", append([]zap.Field{zap.String("op", op), zap.String("reason", reason)}, fields...)...)
	return false
}
