package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/app"
	"github.com/abhisek/coinwise/internal/config"
	"github.com/abhisek/coinwise/internal/diagnosis"
	"github.com/abhisek/coinwise/internal/logging"
	"github.com/abhisek/coinwise/internal/rewards"
	"github.com/abhisek/coinwise/internal/screen"
	"github.com/abhisek/coinwise/internal/viewer"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coinwise",
	Short: "Money lessons for the terminal",
	Long:  "Coinwise: bite-sized money lessons with graded tests, a money personality check and a levelling XP bar.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logger, err = logging.New(cfg.Log, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp builds the shared services and launches the TUI.
func runApp() error {
	tuiLog, err := logging.ForTUI(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = tuiLog.Sync() }()

	deps := screen.Deps{
		Config:    cfg,
		Log:       tuiLog,
		Account:   rewards.NewAccount(cfg.Progression.Start(), rewards.WithLogger(tuiLog)),
		Viewer:    viewer.NewHub(viewer.Profile{DisplayName: cfg.Viewer.DisplayName, Plan: cfg.Viewer.Plan}),
		Diagnosis: diagnosis.NewService(diagnosis.WithLogger(tuiLog)),
	}
	return app.Run(deps)
}
