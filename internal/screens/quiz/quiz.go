package quiz

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/coinwise/internal/quiz"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/layout"
	"github.com/abhisek/coinwise/internal/viewer"
)

// revealDoneMsg ends the reveal window of a question.
type revealDoneMsg struct {
	questionID string
}

// questionRenderedMsg reports that a question has been drawn after an
// advance, which re-arms the machine for the next advance.
type questionRenderedMsg struct {
	questionID string
}

// QuizScreen runs one attempt of a lesson test.
type QuizScreen struct {
	deps    screen.Deps
	bank    qz.Bank
	machine *qz.Machine
	err     error

	choices  components.ChoiceList
	feedback *qz.Feedback
	result   *qz.Result
	routed   bool

	// rendering holds the question id awaiting its first draw after an
	// advance. Keys are ignored until it is drawn.
	rendering string

	profile viewer.Profile
	watch   *screen.ViewerWatch
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Teardown = (*QuizScreen)(nil)

// New creates a quiz screen for bank. A malformed bank is kept as an error
// and rendered as unavailable content.
func New(deps screen.Deps, bank qz.Bank) *QuizScreen {
	s := &QuizScreen{
		deps:  deps,
		bank:  bank,
		watch: screen.WatchViewer(deps.Viewer),
	}
	if deps.Viewer != nil {
		s.profile = deps.Viewer.Current()
	}

	m, err := qz.NewMachine(bank,
		qz.WithLogger(deps.Logger()),
		qz.WithScheduler(nil),
		qz.WithRevealDelay(deps.Config.Quiz.RevealDelay),
		qz.OnComplete(func(r qz.Result) { s.result = &r }),
	)
	if err != nil {
		deps.Logger().Warn("quiz content unavailable", zap.String("test", bank.TestID), zap.Error(err))
		s.err = err
		return s
	}
	s.machine = m
	s.choices = components.NewChoiceList(m.Current().Choices)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.watch.Next()
}

func (s *QuizScreen) Title() string {
	if s.bank.Title != "" {
		return s.bank.Title
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.err != nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.machine.Submitted():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/A-E", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if p, ok := msg.(screen.ProfileMsg); ok {
		s.profile = p.Profile
		return s, s.watch.Next()
	}
	if s.err != nil {
		return s, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = s.handleKey(msg)
	case revealDoneMsg:
		s.handleRevealDone(msg)
	case questionRenderedMsg:
		if msg.questionID == s.rendering {
			s.rendering = ""
		}
		s.machine.MarkRendered(msg.questionID)
	}

	s.machine.Sync()
	if s.result != nil && !s.routed {
		s.routed = true
		return s, router.ReplaceCmd(NewResults(s.deps, *s.result))
	}
	return s, cmd
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.rendering != "" {
		return nil
	}
	q := s.machine.Current()

	if msg.String() != "enter" {
		if s.machine.Submitted() {
			return nil
		}
		s.choices = s.choices.Update(msg)
		if key, ok := s.choices.Current(); ok {
			s.machine.SelectOption(q.ID, key)
		}
		return nil
	}

	if !s.machine.Submitted() {
		if key, ok := s.choices.Current(); ok {
			s.machine.SelectOption(q.ID, key)
		}
		fb, ok := s.machine.SubmitAnswer()
		if !ok {
			return nil
		}
		s.feedback = &fb
		return revealCmd(fb.QuestionID, s.deps.Config.Quiz.RevealDelay)
	}

	if !s.machine.Advance() {
		return nil
	}
	next := s.machine.Current()
	if next.ID == q.ID {
		// Last question: completion is picked up by Sync.
		return nil
	}
	s.feedback = nil
	s.choices = components.NewChoiceList(next.Choices)
	id := next.ID
	s.rendering = id
	return func() tea.Msg { return questionRenderedMsg{questionID: id} }
}

func (s *QuizScreen) handleRevealDone(msg revealDoneMsg) {
	if s.machine.Current().ID != msg.questionID {
		return
	}
	s.machine.EndReveal()
}

func revealCmd(questionID string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealDoneMsg{questionID: questionID}
	})
}

// Teardown stops the viewer watch and closes the machine.
func (s *QuizScreen) Teardown() {
	s.watch.Stop()
	if s.machine != nil {
		s.machine.Close()
	}
}

// Err returns the content error that made the quiz unavailable.
func (s *QuizScreen) Err() error {
	return s.err
}

// ContentUnavailable reports whether the bank failed validation.
func (s *QuizScreen) ContentUnavailable() bool {
	var ce *qz.ContentError
	return errors.As(s.err, &ce)
}
