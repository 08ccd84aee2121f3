package curriculum

import "github.com/abhisek/coinwise/internal/quiz"

var seedLessons = []Lesson{
	{
		ID:      "budgeting-basics",
		Title:   "Budgeting Basics",
		Summary: "Split income into needs, wants and savings, and keep a small buffer for surprises.",
		Test: quiz.Bank{
			LessonID:      "budgeting-basics",
			TestID:        "budgeting-basics-test",
			Title:         "Budgeting Basics",
			NextLessonID:  "compound-interest",
			PassThreshold: 2,
			Questions: []quiz.Question{
				mcq("bb-1", "In the 50/30/20 rule, what does the 20% go to?", quiz.KeyC,
					"Rent", "Eating out", "Savings and debt repayment", "Subscriptions"),
				mcq("bb-2", "Which of these is a need rather than a want?", quiz.KeyA,
					"Groceries", "Concert tickets", "A new phone case", "Streaming service"),
				mcq("bb-3", "An emergency fund is best kept...", quiz.KeyB,
					"In individual stocks", "In an easy-access savings account", "As cash under the mattress", "In a friend's account"),
			},
		},
	},
	{
		ID:      "compound-interest",
		Title:   "Compound Interest",
		Summary: "Interest earns interest. Time in the market matters more than timing it.",
		Test: quiz.Bank{
			LessonID:      "compound-interest",
			TestID:        "compound-interest-test",
			Title:         "Compound Interest",
			NextLessonID:  "index-funds",
			PassThreshold: 3,
			Questions: []quiz.Question{
				mcq("ci-1", "You save 100 at 10% a year, compounded yearly. After two years you have...", quiz.KeyD,
					"110", "115", "120", "121"),
				mcq("ci-2", "The rule of 72 estimates...", quiz.KeyA,
					"Years to double your money", "Your retirement age", "Monthly interest", "Tax owed"),
				mcq("ci-3", "Which helps compounding the most?", quiz.KeyB,
					"Withdrawing gains yearly", "Starting early", "Switching banks often", "Keeping cash at home"),
				mcq("ci-4", "Compound interest on a credit card balance...", quiz.KeyC,
					"Works in your favour", "Does not exist", "Makes debt grow faster", "Is always zero"),
			},
		},
	},
	{
		ID:      "index-funds",
		Title:   "Index Funds",
		Summary: "Own a slice of the whole market at low cost instead of picking single winners.",
		Test: quiz.Bank{
			LessonID:      "index-funds",
			TestID:        "index-funds-test",
			Title:         "Index Funds",
			IsLast:        true,
			PassThreshold: 4,
			Questions: []quiz.Question{
				mcq("if-1", "An index fund aims to...", quiz.KeyB,
					"Beat the market every year", "Track a market index", "Avoid all risk", "Pick the best stock"),
				mcq("if-2", "Why do index funds usually have low fees?", quiz.KeyA,
					"They are passively managed", "They are government funded", "They hold only cash", "They never trade"),
				mcq("if-3", "Diversification means...", quiz.KeyC,
					"Buying one great company", "Timing the market", "Spreading money across many assets", "Holding only bonds"),
				mcq("if-4", "The expense ratio is...", quiz.KeyD,
					"Your profit share", "The fund's size", "A tax rate", "The yearly fee as a share of your investment"),
				mcq("if-5", "A sensible index fund horizon is...", quiz.KeyE,
					"One week", "One month", "Until the next dip", "Whatever a friend says", "Many years"),
			},
		},
	},
}
