package notice

import (
	"fmt"
	"io"
)

// Listener receives messages published on a Board.
type Listener interface {
	Receive(message string)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(message string)

// Receive calls fn(message).
func (fn ListenerFunc) Receive(message string) { fn(message) }

// EmployeeListener is a named subscriber that prints what it receives.
type EmployeeListener struct {
	name string
	out  io.Writer
}

// NewEmployeeListener returns a listener that writes "<name> received: <msg>"
// lines to out.
func NewEmployeeListener(name string, out io.Writer) *EmployeeListener {
	return &EmployeeListener{name: name, out: out}
}

// Name returns the display name given at construction.
func (l *EmployeeListener) Name() string { return l.name }

// Receive writes one line to the listener's output. Write errors are ignored.
func (l *EmployeeListener) Receive(message string) {
	fmt.Fprintf(l.out, "%s received: %s\n", l.name, message)
}

var (
	_ Listener = ListenerFunc(nil)
	_ Listener = (*EmployeeListener)(nil)
)
