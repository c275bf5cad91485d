package initializer

import (
	"io"
	"os"

	"github.com/amirasaad/hookbus/pkg/app"
	"github.com/amirasaad/hookbus/pkg/config"
	"github.com/amirasaad/hookbus/pkg/eventbus"
)

// InitializeDependencies builds the logger and the event registry.
// Logs go to stderr so command output on stdout stays clean.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return initializeDependencies(cfg, os.Stderr)
}

func initializeDependencies(cfg *config.App, logOut io.Writer) (*app.Deps, error) {
	if cfg.Log == nil {
		cfg.Log = &config.Log{Format: "text", Prefix: "[hookbus]"}
	}
	logger := setupLogger(cfg.Log, logOut)
	logger.Debug("logger initialized", "env", cfg.Env, "format", cfg.Log.Format)

	return &app.Deps{
		Registry: eventbus.New(eventbus.WithLogger(logger)),
		Logger:   logger,
	}, nil
}
