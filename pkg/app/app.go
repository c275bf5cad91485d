package app

import (
	"log/slog"

	"github.com/amirasaad/hookbus/pkg/config"
	"github.com/amirasaad/hookbus/pkg/eventbus"
)

// Deps contains the dependencies shared by the application components
type Deps struct {
	Registry *eventbus.Registry
	Logger   *slog.Logger
}

type App struct {
	Deps   *Deps
	Config *config.App
}

// New wires the application and declares the startup events.
func New(deps *Deps, cfg *config.App) (*App, error) {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	if err := app.setupEventBus(); err != nil {
		return nil, err
	}
	return app, nil
}
