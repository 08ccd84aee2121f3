package progression

import (
	"math"
	"time"

	"go.uber.org/zap"
)

type phase int

const (
	phaseIdle phase = iota
	phaseFilling
	phaseHolding
	phaseDone
	phaseCancelled
)

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithCurve sets the level curve used after a level-up.
func WithCurve(c Curve) AnimatorOption {
	return func(a *Animator) { a.curve = c }
}

// WithTiming sets the animation timing.
func WithTiming(t Timing) AnimatorOption {
	return func(a *Animator) { a.timing = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) AnimatorOption {
	return func(a *Animator) {
		if l != nil {
			a.log = l
		}
	}
}

// OnLevelUp registers a hook called with the first snapshot of every new
// level.
func OnLevelUp(fn func(Snapshot)) AnimatorOption {
	return func(a *Animator) { a.onLevelUp = fn }
}

// OnComplete registers a hook called once with the final snapshot. It is
// never called for a cancelled animation.
func OnComplete(fn func(Snapshot)) AnimatorOption {
	return func(a *Animator) { a.onComplete = fn }
}

// Animator replays a gain request as a sequence of frames. Time is always
// supplied by the caller so the loop can be driven by any scheduler.
//
// An Animator is owned by a single driver and is not safe for concurrent
// use.
type Animator struct {
	req    GainRequest
	curve  Curve
	timing Timing
	log    *zap.Logger

	onLevelUp  func(Snapshot)
	onComplete func(Snapshot)

	legs  []Leg
	final Snapshot

	phase      phase
	leg        int
	phaseStart time.Time
}

// NewAnimator plans req and returns an idle animator.
func NewAnimator(req GainRequest, opts ...AnimatorOption) *Animator {
	a := &Animator{
		req:    req,
		timing: DefaultTiming(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.legs, a.final = Plan(req, a.curve)
	return a
}

// Legs returns the planned legs.
func (a *Animator) Legs() []Leg {
	out := make([]Leg, len(a.legs))
	copy(out, a.legs)
	return out
}

// Final returns the snapshot the animation settles on.
func (a *Animator) Final() Snapshot { return a.final }

// Initial returns the first frame of the animation.
func (a *Animator) Initial() Snapshot {
	s := a.req.Start
	return NewSnapshot(s.Level, s.XP, s.RequiredXP)
}

// Start begins the animation at now. Calling Start again has no effect.
func (a *Animator) Start(now time.Time) {
	if a.phase != phaseIdle {
		return
	}
	a.phase = phaseFilling
	a.phaseStart = now
	a.log.Debug("progression started",
		zap.Int("level", a.Initial().Level),
		zap.Int("gain", a.req.Gain),
		zap.Int("legs", len(a.legs)),
	)
}

// Tick computes the frame for now. It returns false once the animation
// has finished or been cancelled; the final snapshot is returned with
// true exactly once. An idle animator is started at now.
func (a *Animator) Tick(now time.Time) (Snapshot, bool) {
	switch a.phase {
	case phaseDone, phaseCancelled:
		return Snapshot{}, false
	case phaseIdle:
		a.Start(now)
	}

	for {
		if a.leg >= len(a.legs) {
			a.phase = phaseDone
			a.log.Debug("progression complete", zap.Int("level", a.final.Level), zap.Int("xp", a.final.XP))
			if a.onComplete != nil {
				a.onComplete(a.final)
			}
			return a.final, true
		}

		leg := a.legs[a.leg]
		elapsed := now.Sub(a.phaseStart)

		switch a.phase {
		case phaseFilling:
			d := a.timing.LegDuration(leg.Advance())
			if elapsed < d {
				return fillFrame(leg, float64(elapsed)/float64(d)), true
			}
			a.phaseStart = a.phaseStart.Add(d)
			if !leg.LevelUp {
				a.leg++
				continue
			}
			a.phase = phaseHolding
			up := a.leveledFrame()
			a.log.Info("level up", zap.Int("level", up.Level), zap.Int("required_xp", up.RequiredXP))
			if a.onLevelUp != nil {
				a.onLevelUp(up)
			}

		case phaseHolding:
			if elapsed < a.timing.LevelUpHold {
				return a.leveledFrame(), true
			}
			a.phaseStart = a.phaseStart.Add(a.timing.LevelUpHold)
			a.phase = phaseFilling
			a.leg++
		}
	}
}

// Cancel stops the animation. Later ticks produce nothing and the
// completion hook never fires.
func (a *Animator) Cancel() {
	if a.phase == phaseDone || a.phase == phaseCancelled {
		return
	}
	a.phase = phaseCancelled
	a.log.Debug("progression cancelled", zap.Int("leg", a.leg), zap.Int("legs", len(a.legs)))
}

// Done reports whether the animation has finished or been cancelled.
func (a *Animator) Done() bool {
	return a.phase == phaseDone || a.phase == phaseCancelled
}

// Cancelled reports whether Cancel stopped the animation.
func (a *Animator) Cancelled() bool { return a.phase == phaseCancelled }

// leveledFrame is the snapshot shown while holding on a fresh level.
func (a *Animator) leveledFrame() Snapshot {
	leg := a.legs[a.leg]
	required := a.final.RequiredXP
	if a.leg+1 < len(a.legs) {
		required = a.legs[a.leg+1].RequiredXP
	}
	s := NewSnapshot(leg.Level+1, 0, required)
	s.JustLeveled = true
	return s
}

func fillFrame(leg Leg, frac float64) Snapshot {
	frac = min(max(frac, 0), 1)
	xp := float64(leg.FromXP) + float64(leg.Advance())*frac
	return Snapshot{
		Level:      leg.Level,
		XP:         int(math.Round(xp)),
		RequiredXP: leg.RequiredXP,
		Percent:    Percent(xp, leg.RequiredXP),
	}
}
