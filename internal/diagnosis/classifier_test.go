package diagnosis

import (
	"testing"
)

func TestClassify_AllTiesFavourLeft(t *testing.T) {
	tests := []Scores{
		{},
		{TraitKnowledge: 3, TraitSense: 3, TraitRisk: 3, TraitStable: 3, TraitSolo: 3, TraitTogether: 3},
		{TraitKnowledge: 7, TraitSense: 7, TraitRisk: 1, TraitStable: 1, TraitSolo: 12, TraitTogether: 12},
	}
	for _, s := range tests {
		if got := Classify(s); got != PatternQuantMaverick {
			t.Errorf("Classify(%v) = %d, want %d", s, got, PatternQuantMaverick)
		}
	}
}

func TestClassify_StrictCombinations(t *testing.T) {
	// left wins by 2 or right wins by 2 on every axis
	axis := func(leftWins bool) (int, int) {
		if leftWins {
			return 5, 3
		}
		return 3, 5
	}

	tests := []struct {
		knowledge, risk, solo bool
		want                  PatternID
	}{
		{true, true, true, 1},
		{true, true, false, 2},
		{true, false, true, 3},
		{true, false, false, 4},
		{false, true, true, 5},
		{false, true, false, 6},
		{false, false, true, 7},
		{false, false, false, 8},
	}

	for _, tt := range tests {
		k, se := axis(tt.knowledge)
		r, st := axis(tt.risk)
		so, to := axis(tt.solo)
		s := Scores{
			TraitKnowledge: k, TraitSense: se,
			TraitRisk: r, TraitStable: st,
			TraitSolo: so, TraitTogether: to,
		}
		if got := Classify(s); got != tt.want {
			t.Errorf("Classify(k=%v r=%v s=%v) = %d, want %d", tt.knowledge, tt.risk, tt.solo, got, tt.want)
		}
	}
}

func TestDominate_SingleAxisTie(t *testing.T) {
	d := Dominate(Scores{TraitKnowledge: 2, TraitSense: 2, TraitStable: 1, TraitTogether: 4})
	want := Dominance{Knowledge: true, Risk: false, Solo: false}
	if d != want {
		t.Errorf("Dominate = %+v, want %+v", d, want)
	}
	if got := d.Pattern(); got != PatternStudyGroupSaver {
		t.Errorf("Pattern = %d, want %d", got, PatternStudyGroupSaver)
	}
}

func TestPatterns_RegistryComplete(t *testing.T) {
	ps := Patterns()
	if len(ps) != 8 {
		t.Fatalf("got %d patterns, want 8", len(ps))
	}
	labels := make(map[string]bool)
	for i, p := range ps {
		if int(p.ID) != i+1 {
			t.Errorf("pattern %d has id %d", i, p.ID)
		}
		if p.Label == "" || p.Description == "" {
			t.Errorf("pattern %d missing label or description", p.ID)
		}
		if labels[p.Label] {
			t.Errorf("duplicate label %q", p.Label)
		}
		labels[p.Label] = true

		got, ok := LookupPattern(p.ID)
		if !ok || got != p {
			t.Errorf("LookupPattern(%d) = %+v, %v", p.ID, got, ok)
		}
	}

	if PatternCommunitySaver.Label() != "Community Saver" {
		t.Errorf("label = %q", PatternCommunitySaver.Label())
	}
	if PatternID(42).Label() != "pattern-42" {
		t.Errorf("unknown label = %q", PatternID(42).Label())
	}
}

func TestPatterns_ReturnsCopy(t *testing.T) {
	ps := Patterns()
	ps[0].Label = "mutated"
	if Patterns()[0].Label == "mutated" {
		t.Error("Patterns exposed the registry slice")
	}
}
