package diagnosis

// Trait is one of the six diagnosis dimensions.
type Trait string

const (
	TraitKnowledge Trait = "knowledge"
	TraitSense     Trait = "sense"
	TraitRisk      Trait = "risk"
	TraitStable    Trait = "stable"
	TraitSolo      Trait = "solo"
	TraitTogether  Trait = "together"
)

// AllTraits returns the traits in axis order, left trait first.
func AllTraits() []Trait {
	return []Trait{TraitKnowledge, TraitSense, TraitRisk, TraitStable, TraitSolo, TraitTogether}
}

// Valid reports whether t is a known trait.
func (t Trait) Valid() bool {
	switch t {
	case TraitKnowledge, TraitSense, TraitRisk, TraitStable, TraitSolo, TraitTogether:
		return true
	}
	return false
}

// Axis is a pair of opposing traits. Ties on an axis go to Left.
type Axis struct {
	Name  string
	Left  Trait
	Right Trait
}

// Axes returns the three axes in classification order.
func Axes() []Axis {
	return []Axis{
		{Name: "approach", Left: TraitKnowledge, Right: TraitSense},
		{Name: "appetite", Left: TraitRisk, Right: TraitStable},
		{Name: "style", Left: TraitSolo, Right: TraitTogether},
	}
}

// Weights is the partial trait contribution of an option. Values are
// positive.
type Weights map[Trait]int

// Option is one answer to a diagnosis question.
type Option struct {
	Label   string  `json:"label"`
	Weights Weights `json:"weights"`
}

// Question is a diagnosis question.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Answers maps a question id to the index of the chosen option.
// Questions without an entry are unanswered.
type Answers map[string]int

// Scores is the accumulated score per trait. Missing traits score 0.
type Scores map[Trait]int

// Get returns the score of t.
func (s Scores) Get(t Trait) int {
	return s[t]
}

// Full returns a copy of s with an entry for every trait.
func (s Scores) Full() Scores {
	out := make(Scores, len(AllTraits()))
	for _, t := range AllTraits() {
		out[t] = s[t]
	}
	return out
}

// Dominance holds the outcome of the three axis comparisons. Each field
// is true when the left trait of its axis dominates.
type Dominance struct {
	Knowledge bool `json:"knowledge"`
	Risk      bool `json:"risk"`
	Solo      bool `json:"solo"`
}
