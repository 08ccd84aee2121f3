package progression

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Input defaults applied when a field is absent or unusable.
const (
	DefaultInitialLevel = 1
	DefaultCurrentXP    = 0
	DefaultXPToNext     = 100
	DefaultGainedXP     = 50
)

// Input is the query-style description of a progression run.
type Input struct {
	InitialLevel int `json:"initialLevel"`
	CurrentXP    int `json:"currentXp"`
	XPToNext     int `json:"xpToNext"`
	GainedXP     int `json:"gainedXp"`
}

// DefaultInput returns the input used when nothing is supplied.
func DefaultInput() Input {
	return Input{
		InitialLevel: DefaultInitialLevel,
		CurrentXP:    DefaultCurrentXP,
		XPToNext:     DefaultXPToNext,
		GainedXP:     DefaultGainedXP,
	}
}

// ParseInput reads initialLevel, currentXp, xpToNext and gainedXp from v.
// Missing, non-numeric or negative values fall back to their defaults;
// initialLevel and xpToNext must also be at least 1.
func ParseInput(v url.Values) Input {
	return Input{
		InitialLevel: number(v.Get("initialLevel"), 1, DefaultInitialLevel),
		CurrentXP:    number(v.Get("currentXp"), 0, DefaultCurrentXP),
		XPToNext:     number(v.Get("xpToNext"), 1, DefaultXPToNext),
		GainedXP:     number(v.Get("gainedXp"), 0, DefaultGainedXP),
	}
}

// ParseQuery parses a raw query string such as "currentXp=90&gainedXp=250".
// Malformed pairs are ignored.
func ParseQuery(raw string) Input {
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return ParseInput(v)
}

// Values encodes the input back into query form.
func (in Input) Values() url.Values {
	v := url.Values{}
	v.Set("initialLevel", strconv.Itoa(in.InitialLevel))
	v.Set("currentXp", strconv.Itoa(in.CurrentXP))
	v.Set("xpToNext", strconv.Itoa(in.XPToNext))
	v.Set("gainedXp", strconv.Itoa(in.GainedXP))
	return v
}

// Request converts the input into a gain request.
func (in Input) Request() GainRequest {
	return GainRequest{
		Start: NewSnapshot(in.InitialLevel, in.CurrentXP, in.XPToNext),
		Gain:  in.GainedXP,
	}
}

func number(s string, floor, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return def
	}
	n := int(math.Round(f))
	if n < floor {
		return def
	}
	return n
}
