package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coinwise/internal/curriculum"
	"github.com/abhisek/coinwise/internal/diagnosis"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/screens/personality"
	"github.com/abhisek/coinwise/internal/screens/progress"
	"github.com/abhisek/coinwise/internal/screens/quiz"
	"github.com/abhisek/coinwise/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	var items []components.MenuItem
	for _, l := range curriculum.All() {
		bank := l.Test
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(l.Title),
			Action: func() tea.Cmd {
				return router.PushCmd(quiz.New(deps, bank))
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "MONEY PERSONALITY", Action: func() tea.Cmd {
			return router.PushCmd(personality.New(deps, diagnosis.ReferenceBank()))
		}},
		components.MenuItem{Label: "XP LAB", Action: func() tea.Cmd {
			in := deps.Config.Progression.LabInput()
			if deps.Account != nil {
				rec := deps.Account.Current()
				in.InitialLevel, in.CurrentXP, in.XPToNext = rec.Level, rec.XP, rec.RequiredXP
			}
			return router.PushCmd(progress.NewLab(deps, in))
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)
	record := h.deps.Config.Progression.Start()
	var totalXP, tests int
	variant := MascotIdle
	if acct := h.deps.Account; acct != nil {
		record = acct.Current()
		awards := acct.Awards()
		totalXP, tests = acct.TotalXP(), len(awards)
		variant = mascotFor(awards)
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, components.Centered(RenderMascot(variant), cw))
	}
	sections = append(sections, renderStatsBar(record, totalXP, tests, cw))
	sections = append(sections, components.Centered(h.menu.View(24), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
