package manifest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes the dispatch trace of a manifest run.
type Printer struct {
	out     io.Writer
	event   *color.Color
	hook    *color.Color
	stop    *color.Color
	fail    *color.Color
	comment *color.Color
}

// NewPrinter creates a Printer writing to out. Colors are only emitted when
// colored is true.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:     out,
		event:   color.New(color.FgCyan, color.Bold),
		hook:    color.New(color.FgGreen),
		stop:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		comment: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.event, p.hook, p.stop, p.fail, p.comment} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Step prints the operation a step performs.
func (p *Printer) Step(s Step) {
	switch {
	case s.Op == OpTrigger:
		p.event.Fprintf(p.out, "> %s\n", s.Event) //nolint:errcheck
	case s.ID != "":
		p.comment.Fprintf(p.out, "- %s %s/%s\n", s.Op, s.Event, s.ID) //nolint:errcheck
	default:
		p.comment.Fprintf(p.out, "- %s %s\n", s.Op, s.Event) //nolint:errcheck
	}
}

// Hook prints a hook invocation.
func (p *Printer) Hook(label string, action Action, message string) {
	c := p.hook
	switch action {
	case ActionStop:
		c = p.stop
	case ActionFail:
		c = p.fail
	}
	if message == "" {
		c.Fprintf(p.out, "  [%s] %s\n", label, action) //nolint:errcheck
		return
	}
	c.Fprintf(p.out, "  [%s] %s: %s\n", label, action, message) //nolint:errcheck
}

// Error prints an error that ended a run.
func (p *Printer) Error(err error) {
	p.fail.Fprintf(p.out, "error: %v\n", err) //nolint:errcheck
}

// Summary prints a line per event with its handler count.
func (p *Printer) Summary(event string, handlers int, ids []string) {
	p.event.Fprintf(p.out, "%s", event)          //nolint:errcheck
	fmt.Fprintf(p.out, " handlers=%d", handlers) //nolint:errcheck
	if len(ids) > 0 {
		fmt.Fprintf(p.out, " ids=%v", ids) //nolint:errcheck
	}
	fmt.Fprintln(p.out) //nolint:errcheck
}
