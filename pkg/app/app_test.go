package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/hookbus/pkg/config"
	"github.com/amirasaad/hookbus/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(w io.Writer) *Deps {
	logger := slog.New(slog.NewTextHandler(w, nil))
	return &Deps{
		Registry: eventbus.New(eventbus.WithLogger(logger)),
		Logger:   logger,
	}
}

func TestNew_DeclaresStartupEvents(t *testing.T) {
	deps := newTestDeps(io.Discard)
	cfg := &config.App{EventBus: &config.EventBus{Events: []string{"boot", "shutdown"}}}

	a, err := New(deps, cfg)
	require.NoError(t, err)
	assert.True(t, a.Deps.Registry.Exists("boot"))
	assert.True(t, a.Deps.Registry.Exists("shutdown"))
	assert.Equal(t, 0, a.Deps.Registry.Len("boot"))
}

func TestNew_AuditHook(t *testing.T) {
	var buf bytes.Buffer
	deps := newTestDeps(&buf)
	cfg := &config.App{EventBus: &config.EventBus{Events: []string{"boot"}, Audit: true}}

	a, err := New(deps, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{AuditHookID}, a.Deps.Registry.IDs("boot"))

	require.NoError(t, a.Deps.Registry.Trigger(context.Background(), "boot"))
	assert.Contains(t, buf.String(), "event triggered")
	assert.Contains(t, buf.String(), "event=boot")
}

func TestNew_NilEventBusConfig(t *testing.T) {
	deps := newTestDeps(io.Discard)

	a, err := New(deps, &config.App{})
	require.NoError(t, err)
	assert.Empty(t, a.Deps.Registry.Events())
}
