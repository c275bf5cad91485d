// Package app wires the event registry with the events and hooks
// configured for the process.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/hookbus/pkg/eventbus"
)

// AuditHookID is the id of the hook attached when auditing is enabled.
const AuditHookID = "audit"

// setupEventBus declares the configured startup events.
func (a *App) setupEventBus() error {
	bus := a.Deps.Registry
	logger := a.Deps.Logger
	if a.Config.EventBus == nil {
		return nil
	}

	for _, event := range a.Config.EventBus.Events {
		bus.Declare(event)
		if !a.Config.EventBus.Audit {
			continue
		}
		if _, err := bus.Attach(event, auditHook(event, logger), eventbus.WithID(AuditHookID)); err != nil {
			return fmt.Errorf("failed to attach audit hook to %q: %w", event, err)
		}
	}
	logger.Debug("startup events declared", "events", a.Config.EventBus.Events, "audit", a.Config.EventBus.Audit)
	return nil
}

func auditHook(event string, logger *slog.Logger) eventbus.Handler {
	return eventbus.HandlerFunc(func(ctx context.Context) (eventbus.Result, error) {
		logger.InfoContext(ctx, "event triggered", "event", event)
		return eventbus.Continue, nil
	})
}
