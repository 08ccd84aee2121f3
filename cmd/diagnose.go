package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coinwise/internal/diagnosis"
)

var (
	diagnoseAnswers string
	diagnoseList    bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Classify a money personality from questionnaire answers",
	Long: `Scores the reference questionnaire with the given option indexes and
prints the trait scores and pattern as JSON. Leave an entry empty to skip
that question.

  coinwise diagnose --answers 0,2,1,,3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := diagnosis.ReferenceBank()
		out := cmd.OutOrStdout()

		if diagnoseList {
			for _, q := range bank {
				fmt.Fprintf(out, "%s  %s\n", q.ID, q.Text)
				for i, opt := range q.Options {
					fmt.Fprintf(out, "      %d) %s\n", i, opt.Label)
				}
			}
			return nil
		}

		answers, err := parseAnswers(bank, diagnoseAnswers)
		if err != nil {
			return err
		}
		res, err := diagnosis.NewService(diagnosis.WithLogger(logger)).Diagnose(bank, answers)
		if err != nil {
			return err
		}
		return writeJSON(out, res)
	},
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseAnswers, "answers", "", "Comma-separated option indexes in question order")
	diagnoseCmd.Flags().BoolVar(&diagnoseList, "list", false, "Print the questionnaire and exit")
}

// parseAnswers maps positional option indexes onto question ids. Empty
// entries leave the question unanswered.
func parseAnswers(bank []diagnosis.Question, s string) (diagnosis.Answers, error) {
	answers := make(diagnosis.Answers)
	if strings.TrimSpace(s) == "" {
		return answers, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) > len(bank) {
		return nil, fmt.Errorf("got %d answers for %d questions", len(parts), len(bank))
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		answers[bank[i].ID] = n
	}
	return answers, nil
}
