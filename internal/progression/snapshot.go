package progression

import "math"

// Snapshot is the visible state of the XP bar.
type Snapshot struct {
	Level       int  `json:"level"`
	XP          int  `json:"xp"`
	RequiredXP  int  `json:"requiredXp"`
	Percent     int  `json:"percent"`
	JustLeveled bool `json:"justLeveled"`
}

// NewSnapshot builds a normalized snapshot: level and requiredXp are at
// least 1 and xp is clamped to [0, requiredXp].
func NewSnapshot(level, xp, requiredXP int) Snapshot {
	level = max(level, 1)
	requiredXP = max(requiredXP, 1)
	xp = min(max(xp, 0), requiredXP)
	return Snapshot{
		Level:      level,
		XP:         xp,
		RequiredXP: requiredXP,
		Percent:    Percent(float64(xp), requiredXP),
	}
}

// Full reports whether the bar is at capacity.
func (s Snapshot) Full() bool {
	return s.XP >= s.RequiredXP
}

// Percent returns round(100*xp/required) clamped to [0, 100].
func Percent(xp float64, required int) int {
	if required <= 0 {
		return 0
	}
	p := int(math.Round(100 * xp / float64(required)))
	return min(max(p, 0), 100)
}

// GainRequest asks for Gain XP to be applied on top of Start.
type GainRequest struct {
	Start Snapshot `json:"start"`
	Gain  int      `json:"gain"`
}

// Curve returns the XP required to clear a level.
type Curve func(level int) int

// FlatCurve requires the same amount of XP for every level.
func FlatCurve(required int) Curve {
	return func(int) int { return required }
}

// LinearCurve requires base XP at level 1 and step more for every level
// after that.
func LinearCurve(base, step int) Curve {
	return func(level int) int { return base + step*(max(level, 1)-1) }
}
