package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/quiz"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// ChoiceList renders a question's choices and tracks the cursor. It holds
// no grading state; the screen passes the machine's view in on render.
type ChoiceList struct {
	Choices []quiz.Choice
	Cursor  int
}

// NewChoiceList creates a choice list with the cursor on the first choice.
func NewChoiceList(choices []quiz.Choice) ChoiceList {
	return ChoiceList{Choices: choices}
}

// Update moves the cursor on up/down and on a choice's letter key.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
	default:
		for i, ch := range c.Choices {
			if strings.EqualFold(key, string(ch.Key)) {
				c.Cursor = i
			}
		}
	}
	return c
}

// Current returns the key under the cursor.
func (c ChoiceList) Current() (quiz.Key, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Choices) {
		return "", false
	}
	return c.Choices[c.Cursor].Key, true
}

// ChoiceState is what the list needs to know about grading.
type ChoiceState struct {
	Selected   quiz.Key
	Submitted  bool
	CorrectKey quiz.Key
}

// View renders the choices. After submission the correct choice is
// highlighted and a wrong pick is marked.
func (c ChoiceList) View(st ChoiceState) string {
	var b strings.Builder
	for i, ch := range c.Choices {
		prefix := "  "
		if i == c.Cursor && !st.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, ch.Key, ch.Label)

		var style lipgloss.Style
		switch {
		case st.Submitted && ch.Key == st.CorrectKey:
			style = theme.Correct
			line += "  ✓"
		case st.Submitted && ch.Key == st.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case st.Submitted:
			style = theme.Muted
		case ch.Key == st.Selected:
			style = theme.Selected
		case i == c.Cursor:
			style = theme.Body.Bold(true)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
