package eventbus

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotDeclared is returned when a handler targets an event that was never declared
	ErrEventNotDeclared = errors.New("event not declared")
	// ErrNilHandler is returned when attaching a nil handler
	ErrNilHandler = errors.New("handler cannot be nil")
)

// EventNotDeclaredError carries the event name that Attach was called with.
type EventNotDeclaredError struct {
	Event string
}

func (e *EventNotDeclaredError) Error() string {
	return fmt.Sprintf("%s: %q", ErrEventNotDeclared, e.Event)
}

// Is reports whether target is ErrEventNotDeclared.
func (e *EventNotDeclaredError) Is(target error) bool {
	return target == ErrEventNotDeclared
}
