package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/progression"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// XPBar renders a progression snapshot as a level badge and a bar.
type XPBar struct {
	Snapshot progression.Snapshot
	Width    int
}

// NewXPBar creates an XP bar.
func NewXPBar(s progression.Snapshot, width int) XPBar {
	return XPBar{Snapshot: s, Width: width}
}

// View renders the bar.
func (x XPBar) View() string {
	s := x.Snapshot

	badge := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
		Render(fmt.Sprintf("LV %d", s.Level))
	caption := theme.Muted.Render(fmt.Sprintf("  %d / %d XP", s.XP, s.RequiredXP))
	if s.JustLeveled {
		caption = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("  LEVEL UP!")
	}

	pct := fmt.Sprintf("  %3d%%", s.Percent)
	barWidth := max(x.Width-lipgloss.Width(badge)-lipgloss.Width(pct)-2, 4)

	filled := min(max(barWidth*s.Percent/100, 0), barWidth)
	fill := theme.XPFilled
	if s.JustLeveled {
		fill = theme.XPLeveled
	}
	bar := fill.Render(strings.Repeat(" ", filled)) +
		theme.XPEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return badge + "  " + bar + theme.Muted.Render(pct) + "\n" + caption
}
