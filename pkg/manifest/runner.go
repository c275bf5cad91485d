package manifest

import (
	"context"
	"fmt"

	"github.com/amirasaad/hookbus/pkg/eventbus"
)

// Apply declares the manifest events and attaches its hooks to bus.
// It stops at the first hook that cannot be attached.
func (m *Manifest) Apply(bus eventbus.Bus, p *Printer) error {
	for _, event := range m.Events {
		bus.Declare(event)
	}
	for i, h := range m.Hooks {
		var opts []eventbus.AttachOption
		if h.ID != "" {
			opts = append(opts, eventbus.WithID(h.ID))
		}
		if _, err := bus.Attach(h.Event, hookHandler(h, h.Label(i), p), opts...); err != nil {
			return fmt.Errorf("hook %s: %w", h.Label(i), err)
		}
	}
	return nil
}

// Run applies the manifest and then executes its steps in order.
// A hook error aborts the run and is returned wrapped with the step.
func (m *Manifest) Run(ctx context.Context, bus eventbus.Bus, p *Printer) error {
	if err := m.Apply(bus, p); err != nil {
		return err
	}
	for i, s := range m.Steps {
		p.Step(s)
		switch s.Op {
		case OpDeclare:
			bus.Declare(s.Event)
		case OpTrigger:
			if err := bus.Trigger(ctx, s.Event); err != nil {
				return fmt.Errorf("step %d: trigger %q: %w", i, s.Event, err)
			}
		case OpDetach:
			if s.ID != "" {
				bus.Detach(s.Event, s.ID)
			} else {
				bus.Detach(s.Event)
			}
		case OpRemove:
			bus.Remove(s.Event)
		default:
			return fmt.Errorf("step %d: unknown op %q", i, s.Op)
		}
	}
	return nil
}

func hookHandler(h Hook, label string, p *Printer) eventbus.Handler {
	return eventbus.Bind(func(ctx context.Context, args ...any) (eventbus.Result, error) {
		msg := h.Message
		if len(args) > 0 {
			msg = fmt.Sprintf(msg, args...)
		}
		p.Hook(label, h.Action, msg)

		switch h.Action {
		case ActionStop:
			return eventbus.Stop, nil
		case ActionFail:
			if msg == "" {
				return eventbus.Continue, fmt.Errorf("%w: %s", ErrHookFailed, label)
			}
			return eventbus.Continue, fmt.Errorf("%w: %s: %s", ErrHookFailed, label, msg)
		default:
			return eventbus.Continue, nil
		}
	}, h.Args...)
}
