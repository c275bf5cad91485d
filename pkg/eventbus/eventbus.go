// Package eventbus is a synchronous in-process registry of named events
// and the handlers attached to them.
package eventbus

import (
	"context"
)

// Result tells the registry whether dispatch should go on after a handler.
type Result int

const (
	// Continue lets the next handler run.
	Continue Result = iota
	// Stop ends the current dispatch.
	Stop
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Handler is invoked when the event it is attached to is triggered.
type Handler interface {
	Handle(ctx context.Context) (Result, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context) (Result, error)

// Handle calls f(ctx).
func (f HandlerFunc) Handle(ctx context.Context) (Result, error) {
	return f(ctx)
}

// Bind returns a Handler that calls fn with a fixed argument list.
// Each call receives its own copy of args.
func Bind(fn func(ctx context.Context, args ...any) (Result, error), args ...any) Handler {
	bound := append([]any(nil), args...)
	return HandlerFunc(func(ctx context.Context) (Result, error) {
		return fn(ctx, append([]any(nil), bound...)...)
	})
}

// Bus defines the contract for declaring events, attaching handlers and
// triggering dispatch.
type Bus interface {
	Declare(event string) bool
	Remove(event string)
	Exists(event string) bool
	Attach(event string, handler Handler, opts ...AttachOption) (*Registry, error)
	Detach(event string, id ...string) *Registry
	Trigger(ctx context.Context, event string) error
}
