package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/curriculum"
	"github.com/abhisek/coinwise/internal/progression"
	qz "github.com/abhisek/coinwise/internal/quiz"
	"github.com/abhisek/coinwise/internal/rewards"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/screens/progress"
	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/layout"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// ResultsScreen shows the outcome of an attempt and routes the learner
// on using the identifiers the attempt carried.
type ResultsScreen struct {
	deps   screen.Deps
	result qz.Result
	award  rewards.Award
	gain   progression.GainRequest
	menu   components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults credits the attempt's XP and builds the results screen.
func NewResults(deps screen.Deps, r qz.Result) *ResultsScreen {
	s := &ResultsScreen{
		deps:   deps,
		result: r,
		award:  rewards.AwardFor(r),
	}

	if deps.Account != nil {
		s.gain = deps.Account.Credit(s.award)
	} else {
		s.gain = progression.GainRequest{Start: deps.Config.Progression.Start(), Gain: s.award.XP}
	}

	items := []components.MenuItem{
		{Label: fmt.Sprintf("CLAIM %d XP", s.award.XP), Action: func() tea.Cmd {
			return router.ReplaceCmd(progress.New(deps, s.gain))
		}},
	}
	if next, ok := s.nextBank(); ok {
		items = append(items, components.MenuItem{Label: "NEXT LESSON", Action: func() tea.Cmd {
			return router.ReplaceCmd(New(deps, next))
		}})
	}
	items = append(items,
		components.MenuItem{Label: "RETRY", Action: func() tea.Cmd {
			bank, err := curriculum.Bank(r.Route.LessonID)
			if err != nil {
				deps.Logger().Warn("retry unavailable", zap.String("lesson", r.Route.LessonID), zap.Error(err))
				return nil
			}
			return router.ReplaceCmd(New(deps, bank))
		}},
		components.MenuItem{Label: "HOME", Action: func() tea.Cmd {
			return router.PopToRootCmd
		}},
	)
	s.menu = components.NewMenu(items)
	return s
}

// nextBank returns the test of the next lesson when the attempt passed and
// the route names one.
func (s *ResultsScreen) nextBank() (qz.Bank, bool) {
	rt := s.result.Route
	if !s.result.Passed || rt.IsLast || rt.NextLessonID == "" {
		return qz.Bank{}, false
	}
	bank, err := curriculum.Bank(rt.NextLessonID)
	if err != nil {
		return qz.Bank{}, false
	}
	return bank, true
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Award returns the XP award credited for the attempt.
func (s *ResultsScreen) Award() rewards.Award {
	return s.award
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := s.result

	var verdict string
	if r.Passed {
		verdict = theme.Correct.Render("PASSED")
	} else {
		verdict = theme.Incorrect.Render("NOT YET")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(r.Route.Title))
	b.WriteString("\n\n")
	b.WriteString(verdict)
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d / %d correct", r.CorrectCount, r.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("pass mark %d", qz.EffectiveThreshold(r.PassThreshold, r.Total))))
	b.WriteString("\n\n")
	b.WriteString(components.NewXPBar(s.gain.Start, cw-8).View())

	sections := []string{
		components.Card(b.String(), cw),
		s.menu.View(cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
