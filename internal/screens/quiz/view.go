package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.err != nil {
		return components.CabinetFrame(s.renderUnavailable(cw), width, height)
	}

	var sections []string
	sections = append(sections, s.renderInfoLine(cw))
	sections = append(sections, s.renderQuestion(cw))
	if s.feedback != nil {
		sections = append(sections, s.renderFeedback(cw))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderInfoLine shows the question counter and whose attempt this is.
func (s *QuizScreen) renderInfoLine(cw int) string {
	st := s.machine.State()
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Q %d/%d", st.Index+1, s.machine.Total()))
	right := theme.Muted.Render(fmt.Sprintf("%s · %d answered", s.profile.DisplayName, s.machine.LedgerLen()))

	pad := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *QuizScreen) renderQuestion(cw int) string {
	q := s.machine.Current()
	sel, _ := s.machine.Selection()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.choices.View(components.ChoiceState{
		Selected:   sel,
		Submitted:  s.machine.Submitted(),
		CorrectKey: q.CorrectKey,
	}))
	return b.String()
}

func (s *QuizScreen) renderFeedback(cw int) string {
	fb := s.feedback
	var line string
	if fb.Correct {
		line = theme.Correct.Render("Correct!")
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("Not quite. The answer is %s.", fb.CorrectKey))
	}
	if !s.machine.Revealing() {
		line += theme.Hint.Render("   Enter to continue")
	}
	return components.Centered(line, cw)
}

func (s *QuizScreen) renderUnavailable(cw int) string {
	msg := "Content unavailable"
	if !s.ContentUnavailable() {
		msg = "Quiz unavailable"
	}
	body := theme.Incorrect.Render(msg) + "\n\n" +
		theme.Muted.Width(cw-8).Render(s.err.Error())
	return components.Card(body, cw)
}
