package diagnosis

// Dominate compares the two traits of every axis. Ties favour the left
// trait (knowledge, risk, solo).
func Dominate(s Scores) Dominance {
	return Dominance{
		Knowledge: s.Get(TraitKnowledge) >= s.Get(TraitSense),
		Risk:      s.Get(TraitRisk) >= s.Get(TraitStable),
		Solo:      s.Get(TraitSolo) >= s.Get(TraitTogether),
	}
}

// patternRule maps one dominance combination to a pattern.
type patternRule struct {
	knowledge, risk, solo bool
	pattern               PatternID
}

// patternRules is evaluated top to bottom; the first match wins.
var patternRules = []patternRule{
	{true, true, true, PatternQuantMaverick},
	{true, true, false, PatternSyndicateStrategist},
	{true, false, true, PatternIndexScholar},
	{true, false, false, PatternStudyGroupSaver},
	{false, true, true, PatternGutFeelTrader},
	{false, true, false, PatternTrendRider},
	{false, false, true, PatternSteadyHoarder},
	{false, false, false, PatternCommunitySaver},
}

// Classify maps a score map to exactly one of the eight patterns.
func Classify(s Scores) PatternID {
	return Dominate(s).Pattern()
}

// Pattern returns the pattern for this dominance combination.
func (d Dominance) Pattern() PatternID {
	for _, r := range patternRules {
		if r.knowledge == d.Knowledge && r.risk == d.Risk && r.solo == d.Solo {
			return r.pattern
		}
	}
	// Unreachable: patternRules covers all eight combinations.
	return PatternCommunitySaver
}
