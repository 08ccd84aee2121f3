package screen

import (
	"go.uber.org/zap"

	"github.com/abhisek/coinwise/internal/config"
	"github.com/abhisek/coinwise/internal/diagnosis"
	"github.com/abhisek/coinwise/internal/rewards"
	"github.com/abhisek/coinwise/internal/viewer"
)

// Deps holds the services shared by every screen.
type Deps struct {
	Config    config.Config
	Log       *zap.Logger
	Account   *rewards.Account
	Viewer    viewer.Source
	Diagnosis *diagnosis.Service
}

// Logger returns the configured logger or a no-op logger.
func (d Deps) Logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
