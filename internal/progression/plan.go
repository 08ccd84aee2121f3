package progression

import "time"

// Leg is one uninterrupted fill of the bar within a single level. A leg
// that ends with the bar full promotes to the next level.
type Leg struct {
	Level      int  `json:"level"`
	FromXP     int  `json:"fromXp"`
	ToXP       int  `json:"toXp"`
	RequiredXP int  `json:"requiredXp"`
	LevelUp    bool `json:"levelUp"`
}

// Advance is the XP consumed by the leg.
func (l Leg) Advance() int { return l.ToXP - l.FromXP }

// Plan splits a gain request into legs and returns them together with the
// snapshot of record once the gain has been fully applied. The advances of
// all legs sum to the requested gain. A start snapshot that already fills
// the bar is promoted by a leading zero-length leg.
//
// A nil curve keeps the starting requirement for every level.
func Plan(req GainRequest, curve Curve) ([]Leg, Snapshot) {
	start := NewSnapshot(req.Start.Level, req.Start.XP, req.Start.RequiredXP)
	if curve == nil {
		curve = FlatCurve(start.RequiredXP)
	}
	level, xp, required := start.Level, start.XP, start.RequiredXP
	remaining := max(req.Gain, 0)

	var legs []Leg
	promote := func() {
		level++
		xp = 0
		required = max(curve(level), 1)
	}

	if xp >= required {
		legs = append(legs, Leg{Level: level, FromXP: xp, ToXP: xp, RequiredXP: required, LevelUp: true})
		promote()
	}

	for remaining > 0 {
		advance := min(remaining, required-xp)
		leg := Leg{
			Level:      level,
			FromXP:     xp,
			ToXP:       xp + advance,
			RequiredXP: required,
			LevelUp:    xp+advance == required,
		}
		legs = append(legs, leg)
		remaining -= advance
		xp += advance
		if leg.LevelUp {
			promote()
		}
	}

	return legs, NewSnapshot(level, xp, required)
}

// Settle returns the snapshot of record after applying req, without
// animating it.
func Settle(req GainRequest, curve Curve) Snapshot {
	_, final := Plan(req, curve)
	return final
}

// LevelUps counts the promotions in legs.
func LevelUps(legs []Leg) int {
	n := 0
	for _, l := range legs {
		if l.LevelUp {
			n++
		}
	}
	return n
}

// Timing controls how long each phase of the animation lasts.
type Timing struct {
	// PerXP is the fill time per XP point before clamping.
	PerXP time.Duration
	// MinLeg and MaxLeg bound the duration of a non-empty leg.
	MinLeg time.Duration
	MaxLeg time.Duration
	// LevelUpHold is how long a fresh level is shown as just leveled.
	LevelUpHold time.Duration
}

// DefaultTiming returns the stock animation timing.
func DefaultTiming() Timing {
	return Timing{
		PerXP:       10 * time.Millisecond,
		MinLeg:      500 * time.Millisecond,
		MaxLeg:      1200 * time.Millisecond,
		LevelUpHold: 700 * time.Millisecond,
	}
}

// LegDuration returns the fill time for a leg consuming advance XP.
// Empty legs take no time.
func (t Timing) LegDuration(advance int) time.Duration {
	if advance <= 0 {
		return 0
	}
	d := time.Duration(advance) * t.PerXP
	return min(max(d, t.MinLeg), t.MaxLeg)
}
