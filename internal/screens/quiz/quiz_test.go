package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coinwise/internal/config"
	"github.com/abhisek/coinwise/internal/curriculum"
	"github.com/abhisek/coinwise/internal/progression"
	qz "github.com/abhisek/coinwise/internal/quiz"
	"github.com/abhisek/coinwise/internal/rewards"
	"github.com/abhisek/coinwise/internal/router"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/viewer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testDeps() screen.Deps {
	return screen.Deps{
		Config:  config.DefaultConfig(),
		Account: rewards.NewAccount(progression.NewSnapshot(1, 0, 100)),
		Viewer:  viewer.NewHub(viewer.Profile{DisplayName: "Asha", Plan: "free"}),
	}
}

func budgetingBank(t *testing.T) qz.Bank {
	t.Helper()
	bank, err := curriculum.Bank("budgeting-basics")
	require.NoError(t, err)
	return bank
}

// answer picks key, submits, and advances. It returns the command of the
// advance.
func answer(t *testing.T, s *QuizScreen, key rune) tea.Cmd {
	t.Helper()
	s.Update(keyPress(key))
	_, cmd := s.Update(enter())
	require.NotNil(t, cmd, "submit should schedule the end of the reveal")
	require.True(t, s.machine.Submitted())

	_, cmd = s.Update(enter())
	return cmd
}

// render delivers the rendered message produced by an advance.
func render(t *testing.T, s *QuizScreen, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, questionRenderedMsg{}, msg)
	s.Update(msg)
}

func TestQuizScreen_PassesAndRoutesToResults(t *testing.T) {
	deps := testDeps()
	s := New(deps, budgetingBank(t))
	defer s.Teardown()

	render(t, s, answer(t, s, 'c'))
	render(t, s, answer(t, s, 'b'))
	cmd := answer(t, s, 'b')

	require.NotNil(t, cmd)
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	results, ok := replace.Screen.(*ResultsScreen)
	require.True(t, ok)

	assert.True(t, results.result.Passed)
	assert.Equal(t, 2, results.result.CorrectCount)
	assert.Equal(t, 3, results.result.Total)
	assert.Equal(t, "budgeting-basics", results.result.Route.LessonID)
	assert.Equal(t, "compound-interest", results.result.Route.NextLessonID)

	assert.Equal(t, 2*rewards.XPPerCorrect+rewards.PassBonus, results.Award().XP)
	assert.Equal(t, 45, deps.Account.Current().XP)

	// Completion routes once.
	_, cmd = s.Update(enter())
	assert.Nil(t, cmd)
}

func TestQuizScreen_KeysIgnoredUntilNextQuestionRendered(t *testing.T) {
	s := New(testDeps(), budgetingBank(t))
	defer s.Teardown()

	cmd := answer(t, s, 'c')
	require.NotNil(t, cmd)

	// A second Enter must not submit the next question.
	s.Update(enter())
	assert.False(t, s.machine.Submitted())
	assert.Equal(t, 1, s.machine.State().Index)
	assert.Equal(t, 1, s.machine.LedgerLen())

	render(t, s, cmd)
	s.Update(enter())
	assert.True(t, s.machine.Submitted())
}

func TestQuizScreen_RevealEndsOnlyForCurrentQuestion(t *testing.T) {
	s := New(testDeps(), budgetingBank(t))
	defer s.Teardown()

	s.Update(keyPress('c'))
	s.Update(enter())
	require.True(t, s.machine.Revealing())

	s.Update(revealDoneMsg{questionID: "bb-2"})
	assert.True(t, s.machine.Revealing())

	s.Update(revealDoneMsg{questionID: "bb-1"})
	assert.False(t, s.machine.Revealing())
	assert.Contains(t, s.View(80, 30), "Enter to continue")
}

func TestQuizScreen_SelectionLockedAfterSubmit(t *testing.T) {
	s := New(testDeps(), budgetingBank(t))
	defer s.Teardown()

	s.Update(keyPress('a'))
	s.Update(enter())
	s.Update(keyPress('c'))

	key, ok := s.machine.Selection()
	require.True(t, ok)
	assert.Equal(t, qz.KeyA, key)
	require.NotNil(t, s.feedback)
	assert.False(t, s.feedback.Correct)
	assert.Equal(t, qz.KeyC, s.feedback.CorrectKey)
}

func TestQuizScreen_ContentUnavailable(t *testing.T) {
	s := New(testDeps(), qz.Bank{Title: "Broken"})
	defer s.Teardown()

	assert.True(t, s.ContentUnavailable())
	assert.ErrorIs(t, s.Err(), qz.ErrNoQuestions)
	assert.Contains(t, s.View(80, 24), "Content unavailable")

	_, cmd := s.Update(enter())
	assert.Nil(t, cmd)
}

func TestQuizScreen_FollowsViewerProfile(t *testing.T) {
	deps := testDeps()
	hub := deps.Viewer.(*viewer.Hub)
	s := New(deps, budgetingBank(t))

	wait := s.Init()
	require.NotNil(t, wait)
	hub.Set(viewer.Profile{DisplayName: "Ravi", Plan: "pro"})

	_, next := s.Update(wait())
	assert.NotNil(t, next)
	assert.Equal(t, "Ravi", s.profile.DisplayName)
	assert.Contains(t, s.View(80, 30), "Ravi")

	s.Teardown()
	assert.Equal(t, 0, hub.Subscribers())
	assert.Nil(t, next())
}

func TestResultsScreen_Menu(t *testing.T) {
	route := budgetingBank(t).Route()

	labels := func(s *ResultsScreen) []string {
		out := make([]string, len(s.menu.Items))
		for i, it := range s.menu.Items {
			out[i] = it.Label
		}
		return out
	}

	passed := NewResults(testDeps(), qz.Result{Outcome: qz.NewOutcome(3, 3, 2), Route: route})
	assert.Equal(t, []string{"CLAIM 55 XP", "NEXT LESSON", "RETRY", "HOME"}, labels(passed))

	failed := NewResults(testDeps(), qz.Result{Outcome: qz.NewOutcome(1, 3, 2), Route: route})
	assert.Equal(t, []string{"CLAIM 10 XP", "RETRY", "HOME"}, labels(failed))

	last, err := curriculum.Bank("index-funds")
	require.NoError(t, err)
	final := NewResults(testDeps(), qz.Result{Outcome: qz.NewOutcome(5, 5, 4), Route: last.Route()})
	assert.NotContains(t, labels(final), "NEXT LESSON")
}

func TestResultsScreen_ClaimAndHome(t *testing.T) {
	s := NewResults(testDeps(), qz.Result{Outcome: qz.NewOutcome(1, 3, 2), Route: budgetingBank(t).Route()})
	assert.Contains(t, s.View(80, 30), "NOT YET")

	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Level Progress", replace.Screen.Title())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	_, cmd = s.Update(enter())
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopToRootMsg{}, cmd())
}
