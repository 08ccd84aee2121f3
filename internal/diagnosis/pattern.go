package diagnosis

import "fmt"

// PatternID identifies one of the eight diagnosis patterns (1..8).
type PatternID int

const (
	PatternQuantMaverick       PatternID = iota + 1 // knowledge, risk, solo
	PatternSyndicateStrategist                      // knowledge, risk, together
	PatternIndexScholar                             // knowledge, stable, solo
	PatternStudyGroupSaver                          // knowledge, stable, together
	PatternGutFeelTrader                            // sense, risk, solo
	PatternTrendRider                               // sense, risk, together
	PatternSteadyHoarder                            // sense, stable, solo
	PatternCommunitySaver                           // sense, stable, together
)

// Pattern describes a diagnosis category.
type Pattern struct {
	ID          PatternID `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

var seedPatterns = []Pattern{
	{
		ID:          PatternQuantMaverick,
		Label:       "Quant Maverick",
		Description: "Reads the numbers first, is comfortable with volatility and prefers to make the call alone.",
	},
	{
		ID:          PatternSyndicateStrategist,
		Label:       "Syndicate Strategist",
		Description: "Researches deeply and takes calculated risks, but likes to pressure-test ideas with a group.",
	},
	{
		ID:          PatternIndexScholar,
		Label:       "Index Scholar",
		Description: "Studies the fundamentals, favours steady compounding and manages the plan independently.",
	},
	{
		ID:          PatternStudyGroupSaver,
		Label:       "Study-Group Saver",
		Description: "Learns the rules thoroughly, values security and enjoys planning money with others.",
	},
	{
		ID:          PatternGutFeelTrader,
		Label:       "Gut-Feel Trader",
		Description: "Trusts instinct over spreadsheets, chases upside and acts on their own.",
	},
	{
		ID:          PatternTrendRider,
		Label:       "Trend Rider",
		Description: "Follows momentum and the crowd, open to risk when others are in too.",
	},
	{
		ID:          PatternSteadyHoarder,
		Label:       "Steady Hoarder",
		Description: "Goes by feel, keeps money safe and quietly builds a cushion alone.",
	},
	{
		ID:          PatternCommunitySaver,
		Label:       "Community Saver",
		Description: "Goes by feel, prefers safety and makes money decisions together with family or friends.",
	},
}

var patternsByID map[PatternID]Pattern

func init() {
	patternsByID = make(map[PatternID]Pattern, len(seedPatterns))
	for _, p := range seedPatterns {
		patternsByID[p.ID] = p
	}
}

// Patterns returns all eight patterns in table order.
func Patterns() []Pattern {
	out := make([]Pattern, len(seedPatterns))
	copy(out, seedPatterns)
	return out
}

// LookupPattern returns the pattern with the given id.
func LookupPattern(id PatternID) (Pattern, bool) {
	p, ok := patternsByID[id]
	return p, ok
}

// Label returns the display label of the pattern.
func (id PatternID) Label() string {
	if p, ok := patternsByID[id]; ok {
		return p.Label
	}
	return fmt.Sprintf("pattern-%d", int(id))
}
