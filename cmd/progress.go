package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/coinwise/internal/progression"
)

var (
	progressQuery    string
	progressSettle   bool
	progressInterval time.Duration
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Play an XP gain on the level bar",
	Long: `Animates an XP gain and prints one line per frame. The input uses the
same query parameters as the web widget; missing or invalid values fall back
to their defaults.

  coinwise progress --query "initialLevel=1&currentXp=90&xpToNext=100&gainedXp=250"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := progression.ParseQuery(progressQuery)
		req := in.Request()
		out := cmd.OutOrStdout()

		if progressSettle {
			return writeJSON(out, progression.Settle(req, nil))
		}

		interval := progressInterval
		if interval <= 0 {
			interval = cfg.Progression.FrameInterval
		}

		a := progression.NewAnimator(req,
			progression.WithTiming(cfg.Progression.Timing()),
			progression.WithLogger(logger),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		for s := range progression.Stream(ctx, a, interval) {
			fmt.Fprintln(out, formatFrame(s))
		}
		if a.Cancelled() {
			return fmt.Errorf("interrupted")
		}
		final := a.Final()
		fmt.Fprintf(out, "%d level-up(s), settled at level %d with %d/%d XP\n",
			progression.LevelUps(a.Legs()), final.Level, final.XP, final.RequiredXP)
		return nil
	},
}

func init() {
	progressCmd.Flags().StringVar(&progressQuery, "query", "", "initialLevel, currentXp, xpToNext and gainedXp as a query string")
	progressCmd.Flags().BoolVar(&progressSettle, "settle", false, "Print the final snapshot as JSON without animating")
	progressCmd.Flags().DurationVar(&progressInterval, "interval", 0, "Frame interval (default from config)")
}

func formatFrame(s progression.Snapshot) string {
	line := fmt.Sprintf("LV %-3d %4d/%-4d %3d%%", s.Level, s.XP, s.RequiredXP, s.Percent)
	if s.JustLeveled {
		line += "  LEVEL UP!"
	}
	return line
}
