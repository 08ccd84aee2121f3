// Package rewards turns quiz outcomes into XP and keeps the learner's
// level of record.
package rewards

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/progression"
	"github.com/abhisek/coinwise/internal/quiz"
)

const (
	// XPPerCorrect is earned for every correct answer.
	XPPerCorrect = 10
	// PassBonus is earned once for passing a test.
	PassBonus = 25
)

// ForOutcome returns the XP earned for a quiz outcome.
func ForOutcome(o quiz.Outcome) int {
	xp := o.CorrectCount * XPPerCorrect
	if o.Passed {
		xp += PassBonus
	}
	return xp
}

// Award is one XP credit.
type Award struct {
	AttemptID string
	LessonID  string
	Reason    string
	Passed    bool
	XP        int
	AwardedAt time.Time
}

// AwardFor builds the award for a finished quiz.
func AwardFor(r quiz.Result) Award {
	reason := fmt.Sprintf("%d/%d correct", r.CorrectCount, r.Total)
	if r.Passed {
		reason += ", passed"
	}
	return Award{
		AttemptID: r.AttemptID,
		LessonID:  r.Route.LessonID,
		Reason:    reason,
		Passed:    r.Passed,
		XP:        ForOutcome(r.Outcome),
		AwardedAt: time.Now(),
	}
}

// AccountOption configures an Account.
type AccountOption func(*Account)

// WithCurve sets the level curve. The default keeps the starting
// requirement for every level.
func WithCurve(c progression.Curve) AccountOption {
	return func(a *Account) { a.curve = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) AccountOption {
	return func(a *Account) {
		if l != nil {
			a.log = l
		}
	}
}

// Account holds the learner's level and XP of record. Animations replay
// credits visually but never change the record.
type Account struct {
	mu     sync.Mutex
	record progression.Snapshot
	curve  progression.Curve
	awards []Award
	log    *zap.Logger
}

// NewAccount creates an account starting at start.
func NewAccount(start progression.Snapshot, opts ...AccountOption) *Account {
	a := &Account{
		record: progression.NewSnapshot(start.Level, start.XP, start.RequiredXP),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.curve == nil {
		a.curve = progression.FlatCurve(a.record.RequiredXP)
	}
	return a
}

// Current returns the snapshot of record.
func (a *Account) Current() progression.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.record
}

// Credit applies an award to the record and returns the gain request the
// host can animate.
func (a *Account) Credit(aw Award) progression.GainRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	req := progression.GainRequest{Start: a.record, Gain: max(aw.XP, 0)}
	before := a.record.Level
	a.record = progression.Settle(req, a.curve)
	a.awards = append(a.awards, aw)

	a.log.Info("xp credited",
		zap.String("attempt", aw.AttemptID),
		zap.String("lesson", aw.LessonID),
		zap.Int("xp", aw.XP),
		zap.Int("level_before", before),
		zap.Int("level_after", a.record.Level),
	)
	return req
}

// Awards returns every award credited so far.
func (a *Account) Awards() []Award {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Award, len(a.awards))
	copy(out, a.awards)
	return out
}

// TotalXP sums all credited XP.
func (a *Account) TotalXP() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, aw := range a.awards {
		n += aw.XP
	}
	return n
}
