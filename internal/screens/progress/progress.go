package progress

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/progression"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/layout"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// frameMsg drives one animation frame. gen ties the frame to the
// animation that scheduled it so frames of a superseded run are dropped.
type frameMsg struct {
	gen int
	t   time.Time
}

// ProgressScreen plays an XP gain on the level bar. In lab mode the
// learner can type a new gain, which supersedes the running animation.
type ProgressScreen struct {
	deps     screen.Deps
	anim     *progression.Animator
	gen      int
	frame    progression.Snapshot
	levelUps int
	finished bool

	lab   bool
	input components.TextInput
	gain  int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)
var _ screen.Teardown = (*ProgressScreen)(nil)

// New creates a screen that animates req once.
func New(deps screen.Deps, req progression.GainRequest) *ProgressScreen {
	s := &ProgressScreen{deps: deps}
	s.start(req)
	return s
}

// NewLab creates an editable screen starting from in.
func NewLab(deps screen.Deps, in progression.Input) *ProgressScreen {
	s := &ProgressScreen{
		deps:  deps,
		lab:   true,
		input: components.NewTextInput("XP to gain", true, 6),
	}
	s.start(in.Request())
	return s
}

func (s *ProgressScreen) start(req progression.GainRequest) {
	s.gen++
	s.levelUps = 0
	s.finished = false
	s.gain = req.Gain
	s.anim = progression.NewAnimator(req,
		progression.WithTiming(s.deps.Config.Progression.Timing()),
		progression.WithLogger(s.deps.Logger()),
		progression.OnLevelUp(func(progression.Snapshot) { s.levelUps++ }),
		progression.OnComplete(func(progression.Snapshot) { s.finished = true }),
	)
	s.frame = s.anim.Initial()
}

func (s *ProgressScreen) frameCmd() tea.Cmd {
	gen := s.gen
	interval := s.deps.Config.Progression.FrameInterval
	if interval <= 0 {
		interval = progression.DefaultFrameInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, t: t}
	})
}

func (s *ProgressScreen) Init() tea.Cmd {
	if s.lab {
		return tea.Batch(s.frameCmd(), s.input.Init())
	}
	return s.frameCmd()
}

func (s *ProgressScreen) Title() string {
	if s.lab {
		return "XP Lab"
	}
	return "Level Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.lab {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Gain"},
			{Key: "Enter", Description: "Play"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.finished || s.anim.Cancelled() {
		return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Skip"}}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return s, s.handleFrame(msg)
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	if s.lab {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProgressScreen) handleFrame(msg frameMsg) tea.Cmd {
	if msg.gen != s.gen {
		return nil
	}
	snap, ok := s.anim.Tick(msg.t)
	if !ok {
		return nil
	}
	s.frame = snap
	if s.anim.Done() {
		return nil
	}
	return s.frameCmd()
}

func (s *ProgressScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !s.lab {
		if msg.String() != "enter" {
			return nil
		}
		if s.anim.Done() {
			return router.PopToRootCmd
		}
		s.skip()
		return nil
	}

	if msg.String() != "enter" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	gain, err := s.input.NumericValue()
	if err != nil || gain < 0 {
		s.input.Submit(false)
		return nil
	}
	s.input.Reset()
	return s.replay(gain)
}

// skip jumps to the settled snapshot.
func (s *ProgressScreen) skip() {
	s.anim.Cancel()
	s.frame = s.anim.Final()
	s.finished = true
}

// replay cancels the running animation and plays gain from where it
// would have settled.
func (s *ProgressScreen) replay(gain int) tea.Cmd {
	from := s.anim.Final()
	from.JustLeveled = false
	s.anim.Cancel()
	s.start(progression.GainRequest{Start: from, Gain: gain})
	return s.frameCmd()
}

// Teardown stops the animation.
func (s *ProgressScreen) Teardown() {
	s.anim.Cancel()
}

// Frame returns the snapshot currently shown.
func (s *ProgressScreen) Frame() progression.Snapshot {
	return s.frame
}

// Finished reports whether the current animation reached its final frame
// or was skipped to it.
func (s *ProgressScreen) Finished() bool {
	return s.finished
}

func (s *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("+%d XP", s.gain)))
	b.WriteString("\n\n")
	b.WriteString(components.NewXPBar(s.frame, cw-4).View())
	b.WriteString("\n\n")

	final := s.anim.Final()
	ups := progression.LevelUps(s.anim.Legs())
	switch {
	case s.finished && ups > 0:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("Reached level %d!", final.Level)))
	case s.finished:
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d XP to level %d", final.RequiredXP-final.XP, final.Level+1)))
	default:
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d level-up(s) ahead", ups-s.levelUps)))
	}

	if s.lab {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Gain: " + s.input.View()))
	}

	card := components.Card(b.String(), cw)
	return components.CabinetFrame(card, width, height)
}
