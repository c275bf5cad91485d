package eventbus

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// binding is a handler attached to an event. id is empty for anonymous bindings.
type binding struct {
	id      string
	handler Handler
}

// hookList keeps an event's bindings in dispatch order with an index by id.
type hookList struct {
	bindings []*binding
	byID     map[string]*binding
}

func newHookList() *hookList {
	return &hookList{byID: make(map[string]*binding)}
}

// Registry is a synchronous, in-memory event registry.
// Handlers may only be attached to declared events and run in attach order.
type Registry struct {
	events map[string]struct{}
	hooks  map[string]*hookList
	mu     sync.RWMutex
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		events: make(map[string]struct{}),
		hooks:  make(map[string]*hookList),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("bus", "registry")
	return r
}

// Declare registers an event. It returns false if the event already existed.
func (r *Registry) Declare(event string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event]; ok {
		return false
	}
	r.events[event] = struct{}{}
	r.logger.Debug("event declared", "event", event)
	return true
}

// Remove deletes an event together with all of its handlers.
func (r *Registry) Remove(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event]; !ok {
		return
	}
	delete(r.events, event)
	delete(r.hooks, event)
	r.logger.Debug("event removed", "event", event)
}

// Exists reports whether the event is declared.
func (r *Registry) Exists(event string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.events[event]
	return ok
}

type attachOptions struct {
	id string
}

// AttachOption configures a single Attach call.
type AttachOption func(*attachOptions)

// WithID keys the binding so it can be replaced or detached later.
// Ids are scoped to the event.
func WithID(id string) AttachOption {
	return func(o *attachOptions) {
		o.id = id
	}
}

// Attach binds handler to a declared event.
//
// A binding attached with an id that is already held by the event replaces
// the old handler and keeps its position in the dispatch order.
func (r *Registry) Attach(event string, handler Handler, opts ...AttachOption) (*Registry, error) {
	var o attachOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event]; !ok {
		return r, &EventNotDeclaredError{Event: event}
	}
	if handler == nil {
		return r, ErrNilHandler
	}

	hooks, ok := r.hooks[event]
	if !ok {
		hooks = newHookList()
		r.hooks[event] = hooks
	}

	if o.id != "" {
		if b, exists := hooks.byID[o.id]; exists {
			b.handler = handler
			r.logger.Debug("handler replaced", "event", event, "id", o.id)
			return r, nil
		}
	}

	b := &binding{id: o.id, handler: handler}
	hooks.bindings = append(hooks.bindings, b)
	if o.id != "" {
		hooks.byID[o.id] = b
	}
	r.logger.Debug("handler attached", "event", event, "id", o.id, "handlers", len(hooks.bindings))
	return r, nil
}

// Detach removes the binding with the given id, or every binding of the
// event when no id is passed. The event stays declared.
func (r *Registry) Detach(event string, id ...string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks, ok := r.hooks[event]
	if !ok {
		return r
	}

	if len(id) == 0 {
		delete(r.hooks, event)
		r.logger.Debug("handlers detached", "event", event)
		return r
	}

	for _, key := range id {
		b, exists := hooks.byID[key]
		if !exists {
			continue
		}
		delete(hooks.byID, key)
		hooks.bindings = slices.DeleteFunc(hooks.bindings, func(x *binding) bool { return x == b })
		r.logger.Debug("handler detached", "event", event, "id", key)
	}
	if len(hooks.bindings) == 0 {
		delete(r.hooks, event)
	}
	return r
}

// Trigger runs the handlers bound to event in order on the calling goroutine.
//
// Dispatch ends early when a handler returns Stop or an error; the error is
// returned as is. Events without handlers, declared or not, are a no-op.
// Handlers see the bindings as they were when Trigger was called.
func (r *Registry) Trigger(ctx context.Context, event string) error {
	r.mu.RLock()
	var handlers []Handler
	if hooks, ok := r.hooks[event]; ok {
		handlers = make([]Handler, 0, len(hooks.bindings))
		for _, b := range hooks.bindings {
			handlers = append(handlers, b.handler)
		}
	}
	r.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	log := r.logger.With("event", event, "trigger_id", uuid.NewString())
	log.Debug("dispatching event", "handlers", len(handlers))

	for i, h := range handlers {
		res, err := h.Handle(ctx)
		if err != nil {
			log.Debug("handler returned error", "index", i, "error", err)
			return err
		}
		if res == Stop {
			log.Debug("dispatch stopped", "index", i)
			return nil
		}
	}
	return nil
}

// Events returns the declared event names in sorted order.
func (r *Registry) Events() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of handlers bound to event.
func (r *Registry) Len(event string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if hooks, ok := r.hooks[event]; ok {
		return len(hooks.bindings)
	}
	return 0
}

// IDs returns the ids of the keyed bindings of event in dispatch order.
func (r *Registry) IDs(event string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hooks, ok := r.hooks[event]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(hooks.byID))
	for _, b := range hooks.bindings {
		if b.id != "" {
			ids = append(ids, b.id)
		}
	}
	return ids
}

// Ensure Registry implements the Bus interface.
var _ Bus = (*Registry)(nil)
