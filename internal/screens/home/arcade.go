package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/progression"
	"github.com/abhisek/coinwise/internal/ui/components"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

const titleFull = `  ___  ___  ___  _  _ __      __ ___  ___  ___
 / __|/ _ \|_ _|| \| |\ \    / /|_ _|/ __|| __|
| (__| (_) || | | .  | \ \/\/ /  | | \__ \| _|
 \___|\___/|___||_|\_|  \_/\_/  |___||___/|___|`

const titleCompact = "C · O · I · N · W · I · S · E"

// renderTitle returns the styled title block or the compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	if compact {
		return components.Centered(style.Render(titleCompact), cw)
	}
	return components.Centered(style.Render(titleFull), cw)
}

// renderStatsBar shows the learner record in a double-bordered box.
func renderStatsBar(record progression.Snapshot, totalXP, lessons, cw int) string {
	bar := components.NewXPBar(record, cw-6).View()
	stats := theme.Muted.Render(fmt.Sprintf("%d XP earned · %d lesson tests", totalXP, lessons))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(bar + "\n" + stats)
}
