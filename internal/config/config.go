package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/coinwise/internal/progression"
)

// Config holds all runtime configuration.
type Config struct {
	Quiz        QuizConfig        `yaml:"quiz"`
	Progression ProgressionConfig `yaml:"progression"`
	Log         LogConfig         `yaml:"log"`
	Viewer      ViewerConfig      `yaml:"viewer"`
}

// QuizConfig holds quiz presentation settings.
type QuizConfig struct {
	// RevealDelay is how long correctness stays highlighted after submit.
	RevealDelay time.Duration `yaml:"reveal_delay"`
}

// ProgressionConfig holds XP bar animation settings and the starting
// learner record.
type ProgressionConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	PerXP         time.Duration `yaml:"per_xp"`
	MinLeg        time.Duration `yaml:"min_leg"`
	MaxLeg        time.Duration `yaml:"max_leg"`
	LevelUpHold   time.Duration `yaml:"level_up_hold"`

	InitialLevel int `yaml:"initial_level"`
	XPToNext     int `yaml:"xp_to_next"`
	// GainedXP is the default gain for the XP lab.
	GainedXP int `yaml:"gained_xp"`
}

// Timing returns the animation timing.
func (p ProgressionConfig) Timing() progression.Timing {
	return progression.Timing{
		PerXP:       p.PerXP,
		MinLeg:      p.MinLeg,
		MaxLeg:      p.MaxLeg,
		LevelUpHold: p.LevelUpHold,
	}
}

// Start returns the learner record a fresh session begins with.
func (p ProgressionConfig) Start() progression.Snapshot {
	return progression.NewSnapshot(p.InitialLevel, 0, p.XPToNext)
}

// LabInput returns the default XP lab input.
func (p ProgressionConfig) LabInput() progression.Input {
	return progression.Input{
		InitialLevel: p.InitialLevel,
		CurrentXP:    0,
		XPToNext:     p.XPToNext,
		GainedXP:     p.GainedXP,
	}
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
	// File receives log output. Empty means stderr for headless commands
	// and no logging for the TUI.
	File string `yaml:"file"`
}

// ViewerConfig seeds the viewer profile shown in the header.
type ViewerConfig struct {
	DisplayName string `yaml:"display_name"`
	Plan        string `yaml:"plan"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Quiz: QuizConfig{
			RevealDelay: 1100 * time.Millisecond,
		},
		Progression: ProgressionConfig{
			FrameInterval: 16 * time.Millisecond,
			PerXP:         10 * time.Millisecond,
			MinLeg:        500 * time.Millisecond,
			MaxLeg:        1200 * time.Millisecond,
			LevelUpHold:   700 * time.Millisecond,
			InitialLevel:  1,
			XPToNext:      100,
			GainedXP:      50,
		},
		Log: LogConfig{
			Level: "info",
		},
		Viewer: ViewerConfig{
			DisplayName: "Guest",
			Plan:        "free",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads a YAML config file over the defaults, then applies
// environment overrides and validates the result. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if d, ok := envDuration("COINWISE_REVEAL_DELAY"); ok {
		c.Quiz.RevealDelay = d
	}

	if d, ok := envDuration("COINWISE_FRAME_INTERVAL"); ok {
		c.Progression.FrameInterval = d
	}
	if d, ok := envDuration("COINWISE_LEVEL_UP_HOLD"); ok {
		c.Progression.LevelUpHold = d
	}
	if n, ok := envInt("COINWISE_INITIAL_LEVEL"); ok {
		c.Progression.InitialLevel = n
	}
	if n, ok := envInt("COINWISE_XP_TO_NEXT"); ok {
		c.Progression.XPToNext = n
	}

	if l := os.Getenv("COINWISE_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
	if f := os.Getenv("COINWISE_LOG_FILE"); f != "" {
		c.Log.File = f
	}
	if b, err := strconv.ParseBool(os.Getenv("COINWISE_LOG_DEV")); err == nil {
		c.Log.Development = b
	}

	if n := os.Getenv("COINWISE_DISPLAY_NAME"); n != "" {
		c.Viewer.DisplayName = n
	}
	if p := os.Getenv("COINWISE_PLAN"); p != "" {
		c.Viewer.Plan = p
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Quiz.RevealDelay < 0 {
		return fmt.Errorf("quiz.reveal_delay must not be negative, got %v", c.Quiz.RevealDelay)
	}

	p := c.Progression
	if p.FrameInterval <= 0 {
		return fmt.Errorf("progression.frame_interval must be positive, got %v", p.FrameInterval)
	}
	if p.PerXP < 0 || p.LevelUpHold < 0 {
		return fmt.Errorf("progression durations must not be negative")
	}
	if p.MinLeg <= 0 || p.MaxLeg < p.MinLeg {
		return fmt.Errorf("progression leg bounds invalid: min %v max %v", p.MinLeg, p.MaxLeg)
	}
	if p.InitialLevel < 1 {
		return fmt.Errorf("progression.initial_level must be at least 1, got %d", p.InitialLevel)
	}
	if p.XPToNext < 1 {
		return fmt.Errorf("progression.xp_to_next must be at least 1, got %d", p.XPToNext)
	}
	if p.GainedXP < 0 {
		return fmt.Errorf("progression.gained_xp must not be negative, got %d", p.GainedXP)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	return nil
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
