package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/curriculum"
	"github.com/abhisek/coinwise/internal/quiz"
	"github.com/abhisek/coinwise/internal/rewards"
)

var (
	quizLesson  string
	quizAnswers string
	quizList    bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer a lesson test without the TUI",
	Long: `Runs a lesson test through the quiz state machine with the given answers
and prints the outcome and the XP it earns as JSON.

  coinwise quiz --lesson budgeting-basics --answers C,A,B`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if quizList {
			for _, l := range curriculum.All() {
				fmt.Fprintf(out, "%-20s %s (%d questions)\n", l.ID, l.Title, len(l.Test.Questions))
			}
			return nil
		}

		bank, err := curriculum.Bank(quizLesson)
		if err != nil {
			return err
		}
		res, err := runQuiz(bank, parseKeys(quizAnswers), logger, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return writeJSON(out, quizReport{Result: res, Award: rewards.AwardFor(res)})
	},
}

func init() {
	quizCmd.Flags().StringVar(&quizLesson, "lesson", "budgeting-basics", "Lesson id")
	quizCmd.Flags().StringVar(&quizAnswers, "answers", "", "Comma-separated choice keys, one per question")
	quizCmd.Flags().BoolVar(&quizList, "list", false, "List lessons and exit")
}

type quizReport struct {
	Result quiz.Result   `json:"result"`
	Award  rewards.Award `json:"award"`
}

// parseKeys splits "a, B,c" into upper-case choice keys.
func parseKeys(s string) []quiz.Key {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	keys := make([]quiz.Key, len(parts))
	for i, p := range parts {
		keys[i] = quiz.Key(strings.ToUpper(strings.TrimSpace(p)))
	}
	return keys
}

// runQuiz drives a machine through bank with one key per question and
// writes a line per graded answer to progress.
func runQuiz(bank quiz.Bank, keys []quiz.Key, log *zap.Logger, progress io.Writer) (quiz.Result, error) {
	if len(keys) != len(bank.Questions) {
		return quiz.Result{}, fmt.Errorf("need %d answers, got %d", len(bank.Questions), len(keys))
	}

	var result *quiz.Result
	m, err := quiz.NewMachine(bank,
		quiz.WithLogger(log),
		quiz.WithScheduler(nil),
		quiz.OnComplete(func(r quiz.Result) { result = &r }),
	)
	if err != nil {
		return quiz.Result{}, err
	}
	defer m.Close()

	for i, key := range keys {
		q := m.Current()
		if !m.SelectOption(q.ID, key) {
			return quiz.Result{}, fmt.Errorf("question %d (%s): no choice %q", i+1, q.ID, key)
		}
		fb, ok := m.SubmitAnswer()
		if !ok {
			return quiz.Result{}, fmt.Errorf("question %d (%s): submit rejected", i+1, q.ID)
		}
		mark := "wrong, answer " + string(fb.CorrectKey)
		if fb.Correct {
			mark = "correct"
		}
		fmt.Fprintf(progress, "%-6s %s  %s\n", q.ID, key, mark)

		m.EndReveal()
		m.Advance()
		if next := m.Current(); next.ID != q.ID {
			m.MarkRendered(next.ID)
		}
	}

	m.Sync()
	if result == nil {
		return quiz.Result{}, fmt.Errorf("attempt did not complete")
	}
	return *result, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
