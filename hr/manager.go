// Package hr provides the HR manager, a single process-wide value reached
// through Instance.
//
// Instance builds the manager on first use under a sync.Once, so concurrent
// first calls still construct exactly one. Code that can take the manager as a
// parameter should do so and build it with NewManager instead.
package hr

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Manager publishes HR notices to its output.
type Manager struct {
	id  string
	out io.Writer
}

// NewManager returns a manager writing to out. It is independent of the
// process-wide instance.
func NewManager(out io.Writer) *Manager {
	return &Manager{id: uuid.NewString(), out: out}
}

// ID returns the identifier assigned at construction.
func (m *Manager) ID() string { return m.id }

// PublishNotice writes "Notice: <message>". Write errors are ignored.
func (m *Manager) PublishNotice(message string) {
	fmt.Fprintf(m.out, "Notice: %s\n", message)
}

var (
	instance     *Manager
	instanceOnce sync.Once
)

// Instance returns the process-wide manager, creating it on the first call
// with output to os.Stdout.
func Instance() *Manager {
	instanceOnce.Do(func() {
		instance = NewManager(os.Stdout)
	})
	return instance
}

// InitInstance installs m as the process-wide manager. It has no effect once
// Instance or InitInstance has already run.
func InitInstance(m *Manager) {
	instanceOnce.Do(func() {
		instance = m
	})
}

// Scoped returns an accessor with Instance semantics whose manager writes to
// out. Each call to Scoped yields an independent accessor.
func Scoped(out io.Writer) func() *Manager {
	return sync.OnceValue(func() *Manager { return NewManager(out) })
}

// resetInstance clears the process-wide manager. Tests only; not goroutine safe.
func resetInstance() {
	instanceOnce = sync.Once{}
	instance = nil
}
