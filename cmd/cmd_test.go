package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coinwise/internal/curriculum"
	"github.com/abhisek/coinwise/internal/diagnosis"
	"github.com/abhisek/coinwise/internal/progression"
	"github.com/abhisek/coinwise/internal/quiz"
)

func TestParseKeys(t *testing.T) {
	assert.Nil(t, parseKeys("  "))
	assert.Equal(t, []quiz.Key{quiz.KeyC, quiz.KeyA, quiz.KeyB}, parseKeys("c, A ,b"))
}

func TestRunQuiz_PassesBudgeting(t *testing.T) {
	bank, err := curriculum.Bank("budgeting-basics")
	require.NoError(t, err)

	var progress bytes.Buffer
	res, err := runQuiz(bank, parseKeys("C,B,B"), nil, &progress)
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Equal(t, 2, res.CorrectCount)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, "compound-interest", res.Route.NextLessonID)
	assert.Equal(t, 3, strings.Count(progress.String(), "\n"))
	assert.Contains(t, progress.String(), "wrong, answer A")
}

func TestRunQuiz_Errors(t *testing.T) {
	bank, err := curriculum.Bank("budgeting-basics")
	require.NoError(t, err)

	_, err = runQuiz(bank, parseKeys("C,B"), nil, io.Discard)
	assert.ErrorContains(t, err, "need 3 answers")

	_, err = runQuiz(bank, parseKeys("C,Z,B"), nil, io.Discard)
	assert.ErrorContains(t, err, "no choice")

	_, err = runQuiz(quiz.Bank{}, nil, nil, io.Discard)
	var ce *quiz.ContentError
	assert.ErrorAs(t, err, &ce)
}

func TestParseAnswers(t *testing.T) {
	bank := diagnosis.ReferenceBank()

	got, err := parseAnswers(bank, "0, ,2")
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Answers{bank[0].ID: 0, bank[2].ID: 2}, got)

	got, err = parseAnswers(bank, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseAnswers(bank, "x")
	assert.Error(t, err)

	_, err = parseAnswers(bank[:1], "0,1")
	assert.Error(t, err)
}

func TestFormatFrame(t *testing.T) {
	s := progression.NewSnapshot(2, 0, 100)
	s.JustLeveled = true
	assert.Equal(t, "LV 2      0/100    0%  LEVEL UP!", formatFrame(s))
}

func TestProgressCommand_Settle(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"progress", "--settle", "--query", "initialLevel=1&currentXp=90&xpToNext=100&gainedXp=250"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		progressSettle = false
		progressQuery = ""
	})

	require.NoError(t, rootCmd.Execute())

	var got progression.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, progression.NewSnapshot(4, 40, 100), got)
}
