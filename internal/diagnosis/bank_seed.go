package diagnosis

// seedBank is the reference money-personality question set. Options are
// listed left trait first.
var seedBank = []Question{
	{
		ID:   "q01",
		Text: "You receive an unexpected bonus. What do you do first?",
		Options: []Option{
			{Label: "Compare returns on a few investment options", Weights: Weights{TraitKnowledge: 2}},
			{Label: "Park it somewhere safe until it feels right", Weights: Weights{TraitSense: 1, TraitStable: 1}},
		},
	},
	{
		ID:   "q02",
		Text: "A friend pitches a new crypto coin that 'cannot lose'.",
		Options: []Option{
			{Label: "Put a small amount in to see what happens", Weights: Weights{TraitRisk: 2}},
			{Label: "Pass, it sounds too good to be true", Weights: Weights{TraitStable: 2}},
		},
	},
	{
		ID:   "q03",
		Text: "How do you usually decide on a big purchase?",
		Options: []Option{
			{Label: "I research alone until I am sure", Weights: Weights{TraitKnowledge: 1, TraitSolo: 1}},
			{Label: "I ask family or friends what they think", Weights: Weights{TraitTogether: 2}},
		},
	},
	{
		ID:   "q04",
		Text: "Your favourite way to learn about money is...",
		Options: []Option{
			{Label: "Books, courses and spreadsheets", Weights: Weights{TraitKnowledge: 2}},
			{Label: "Stories from people I trust", Weights: Weights{TraitSense: 1, TraitTogether: 1}},
		},
	},
	{
		ID:   "q05",
		Text: "The market drops 20% in a month. You...",
		Options: []Option{
			{Label: "Buy more while prices are low", Weights: Weights{TraitRisk: 2}},
			{Label: "Hold steady and avoid checking too often", Weights: Weights{TraitStable: 2}},
			{Label: "Sell some to feel safe", Weights: Weights{TraitSense: 1, TraitStable: 1}},
		},
	},
	{
		ID:   "q06",
		Text: "Splitting a group dinner bill, you prefer to...",
		Options: []Option{
			{Label: "Pay for my own order, done", Weights: Weights{TraitSolo: 2}},
			{Label: "Split it evenly, it keeps things friendly", Weights: Weights{TraitTogether: 2}},
		},
	},
	{
		ID:   "q07",
		Text: "When you hear a new financial term, you...",
		Options: []Option{
			{Label: "Look it up right away", Weights: Weights{TraitKnowledge: 2}},
			{Label: "Get the gist and move on", Weights: Weights{TraitSense: 2}},
		},
	},
	{
		ID:   "q08",
		Text: "A stable job or an exciting startup with equity?",
		Options: []Option{
			{Label: "The startup, upside matters", Weights: Weights{TraitRisk: 2}},
			{Label: "The stable job, every time", Weights: Weights{TraitStable: 2}},
		},
	},
	{
		ID:   "q09",
		Text: "Saving for a trip, you would rather...",
		Options: []Option{
			{Label: "Track it in my own budget app", Weights: Weights{TraitSolo: 1, TraitKnowledge: 1}},
			{Label: "Pool money with travel buddies", Weights: Weights{TraitTogether: 2}},
		},
	},
	{
		ID:   "q10",
		Text: "How do you pick a savings account?",
		Options: []Option{
			{Label: "Compare interest rates and fees", Weights: Weights{TraitKnowledge: 2}},
			{Label: "Whatever my bank offers, it feels fine", Weights: Weights{TraitSense: 1, TraitStable: 1}},
		},
	},
	{
		ID:   "q11",
		Text: "You have spare cash for a year. Where does it go?",
		Options: []Option{
			{Label: "Individual stocks I believe in", Weights: Weights{TraitRisk: 2, TraitSolo: 1}},
			{Label: "A fixed deposit", Weights: Weights{TraitStable: 2}},
		},
	},
	{
		ID:   "q12",
		Text: "Talking about money with friends is...",
		Options: []Option{
			{Label: "Private, I keep it to myself", Weights: Weights{TraitSolo: 2}},
			{Label: "Helpful, we learn from each other", Weights: Weights{TraitTogether: 2}},
		},
	},
	{
		ID:   "q13",
		Text: "A price feels off when shopping. You...",
		Options: []Option{
			{Label: "Check unit prices and reviews", Weights: Weights{TraitKnowledge: 2}},
			{Label: "Trust my gut and walk away", Weights: Weights{TraitSense: 2}},
		},
	},
	{
		ID:   "q14",
		Text: "Lottery tickets are...",
		Options: []Option{
			{Label: "A fun shot at something big", Weights: Weights{TraitRisk: 1}},
			{Label: "Money I would rather keep", Weights: Weights{TraitStable: 1}},
		},
	},
	{
		ID:   "q15",
		Text: "For retirement planning you would...",
		Options: []Option{
			{Label: "Build my own plan from scratch", Weights: Weights{TraitSolo: 1, TraitKnowledge: 1}},
			{Label: "Plan it with my partner or family", Weights: Weights{TraitTogether: 1, TraitStable: 1}},
		},
	},
	{
		ID:   "q16",
		Text: "News says a stock is about to take off.",
		Options: []Option{
			{Label: "Read the company's reports first", Weights: Weights{TraitKnowledge: 2}},
			{Label: "If everyone is talking about it, it must be big", Weights: Weights{TraitSense: 1, TraitTogether: 1}},
		},
	},
	{
		ID:   "q17",
		Text: "Your ideal emergency fund covers...",
		Options: []Option{
			{Label: "A month, the rest should be working", Weights: Weights{TraitRisk: 2}},
			{Label: "Six months or more", Weights: Weights{TraitStable: 2}},
		},
	},
	{
		ID:   "q18",
		Text: "When a money decision goes wrong, you...",
		Options: []Option{
			{Label: "Figure out what happened on my own", Weights: Weights{TraitSolo: 2}},
			{Label: "Talk it through with someone close", Weights: Weights{TraitTogether: 2}},
		},
	},
	{
		ID:   "q19",
		Text: "Choosing insurance, you mostly go by...",
		Options: []Option{
			{Label: "Coverage tables and fine print", Weights: Weights{TraitKnowledge: 1}},
			{Label: "Which one feels most reassuring", Weights: Weights{TraitSense: 1, TraitStable: 1}},
		},
	},
	{
		ID:   "q20",
		Text: "A relative asks to co-invest in a small business.",
		Options: []Option{
			{Label: "I will run my own numbers and decide", Weights: Weights{TraitSolo: 1, TraitRisk: 1}},
			{Label: "Join in, family sticks together", Weights: Weights{TraitTogether: 2}},
			{Label: "Decline politely, I keep things safe", Weights: Weights{TraitStable: 1, TraitSense: 1}},
		},
	},
}

// ReferenceBank returns a copy of the reference question set.
func ReferenceBank() []Question {
	out := make([]Question, len(seedBank))
	for i, q := range seedBank {
		opts := make([]Option, len(q.Options))
		for j, o := range q.Options {
			w := make(Weights, len(o.Weights))
			for k, v := range o.Weights {
				w[k] = v
			}
			opts[j] = Option{Label: o.Label, Weights: w}
		}
		out[i] = Question{ID: q.ID, Text: q.Text, Options: opts}
	}
	return out
}
