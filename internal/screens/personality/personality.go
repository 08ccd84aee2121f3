package personality

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/diagnosis"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/layout"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// PersonalityScreen walks the learner through the money personality
// questionnaire and shows the resulting pattern.
type PersonalityScreen struct {
	deps    screen.Deps
	service *diagnosis.Service
	bank    []diagnosis.Question
	index   int
	answers diagnosis.Answers
	menu    components.Menu

	result *diagnosis.Result
	err    error
}

var _ screen.Screen = (*PersonalityScreen)(nil)
var _ screen.KeyHintProvider = (*PersonalityScreen)(nil)

// New creates the questionnaire over bank.
func New(deps screen.Deps, bank []diagnosis.Question) *PersonalityScreen {
	svc := deps.Diagnosis
	if svc == nil {
		svc = diagnosis.NewService(diagnosis.WithLogger(deps.Logger()))
	}
	s := &PersonalityScreen{
		deps:    deps,
		service: svc,
		bank:    bank,
		answers: make(diagnosis.Answers, len(bank)),
	}
	if err := diagnosis.ValidateBank(bank); err != nil {
		deps.Logger().Warn("personality content unavailable", zap.Error(err))
		s.err = err
		return s
	}
	s.loadQuestion()
	return s
}

func (s *PersonalityScreen) loadQuestion() {
	q := s.bank[s.index]
	items := make([]components.MenuItem, len(q.Options))
	for i, opt := range q.Options {
		items[i] = components.MenuItem{Label: opt.Label}
	}
	s.menu = components.NewMenu(items)
}

func (s *PersonalityScreen) Init() tea.Cmd {
	return nil
}

func (s *PersonalityScreen) Title() string {
	return "Money Personality"
}

func (s *PersonalityScreen) KeyHints() []layout.KeyHint {
	if s.result != nil || s.err != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "s", Description: "Skip"},
	}
}

func (s *PersonalityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.result != nil || s.err != nil {
		if kmsg.String() == "enter" {
			return s, router.PopCmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		s.answers[s.bank[s.index].ID] = s.menu.Selected
		s.next()
	case "s":
		s.next()
	default:
		s.menu, _ = s.menu.Update(msg)
	}
	return s, nil
}

// next moves to the following question or classifies after the last.
func (s *PersonalityScreen) next() {
	if s.index < len(s.bank)-1 {
		s.index++
		s.loadQuestion()
		return
	}
	res, err := s.service.Diagnose(s.bank, s.answers)
	if err != nil {
		s.err = err
		return
	}
	s.result = res
}

// Result returns the classification once every question has been seen.
func (s *PersonalityScreen) Result() *diagnosis.Result {
	return s.result
}

func (s *PersonalityScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	switch {
	case s.err != nil:
		content = components.Card(theme.Incorrect.Render("Content unavailable")+"\n\n"+
			theme.Muted.Width(cw-8).Render(s.err.Error()), cw)
	case s.result != nil:
		content = s.renderResult(cw)
	default:
		content = s.renderQuestion(cw)
	}
	return components.CabinetFrame(content, width, height)
}

func (s *PersonalityScreen) renderQuestion(cw int) string {
	q := s.bank[s.index]
	counter := theme.Muted.Render(fmt.Sprintf("Question %d of %d", s.index+1, len(s.bank)))
	text := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Text)
	return strings.Join([]string{counter, text, s.menu.View(cw)}, "\n\n")
}

func (s *PersonalityScreen) renderResult(cw int) string {
	r := s.result

	var b strings.Builder
	b.WriteString(theme.Muted.Render("You are a"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(r.PatternLabel))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw - 8).Render(r.Description))
	b.WriteString("\n\n")

	for _, ax := range diagnosis.Axes() {
		left, right := r.Scores.Get(ax.Left), r.Scores.Get(ax.Right)
		line := fmt.Sprintf("%-9s %3d  vs  %-3d %s", ax.Left, left, right, ax.Right)
		if left >= right {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.Muted.Render(fmt.Sprintf("\n%d of %d answered", r.Answered, r.Total)))

	return components.Card(b.String(), cw)
}
