package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coinwise/internal/rewards"
	"github.com/abhisek/coinwise/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No attempt yet
	MascotCelebrating                      // Last attempt passed
	MascotAlert                            // Last attempt fell short
)

const mascotIdle = ` .-"""-.
/  ◉ ◉  \
|   $   |
\  ‿‿‿  /
 '-...-'`

const mascotCelebrating = ` .-"""-.
/  ★ ★  \
|   $   |
\  ◡◡◡  /
 '-...-'`

const mascotAlert = ` .-"""-.
/  ◉ ◉  \ !
|   $   |
\  ───  /
 '-...-'`

// mascotFor picks the variant from the latest award.
func mascotFor(awards []rewards.Award) MascotVariant {
	if len(awards) == 0 {
		return MascotIdle
	}
	if awards[len(awards)-1].Passed {
		return MascotCelebrating
	}
	return MascotAlert
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Gold
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
