package hr

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests touch package state, so none of them run in parallel.

// TestInstance_SameReference verifies two sequential calls return the same manager.
func TestInstance_SameReference(t *testing.T) {
	resetInstance()
	t.Cleanup(resetInstance)

	m1 := Instance()
	m2 := Instance()

	require.NotNil(t, m1)
	assert.Same(t, m1, m2)
	assert.Equal(t, m1.ID(), m2.ID())
}

// TestInstance_ConcurrentFirstUse verifies concurrent first calls agree on one manager.
func TestInstance_ConcurrentFirstUse(t *testing.T) {
	resetInstance()
	t.Cleanup(resetInstance)

	const n = 64
	got := make([]*Manager, n)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = Instance()
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}

// TestInitInstance verifies a custom manager is used when installed first, and ignored afterwards.
func TestInitInstance(t *testing.T) {
	resetInstance()
	t.Cleanup(resetInstance)

	var out bytes.Buffer
	custom := NewManager(&out)
	InitInstance(custom)
	assert.Same(t, custom, Instance())

	InitInstance(NewManager(&bytes.Buffer{}))
	assert.Same(t, custom, Instance())

	Instance().PublishNotice("Office holiday tomorrow!")
	assert.Equal(t, "Notice: Office holiday tomorrow!\n", out.String())
}

// TestNewManager verifies explicit construction yields distinct managers with valid IDs.
func TestNewManager(t *testing.T) {
	var out bytes.Buffer
	a := NewManager(&out)
	b := NewManager(&out)

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())

	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)

	a.PublishNotice("one")
	b.PublishNotice("two")
	assert.Equal(t, "Notice: one\nNotice: two\n", out.String())
}

// TestScoped verifies a scoped accessor builds once and is independent of Instance.
func TestScoped(t *testing.T) {
	var out bytes.Buffer
	get := Scoped(&out)

	m := get()
	assert.Same(t, m, get())

	other := Scoped(&out)
	assert.NotSame(t, m, other())

	m.PublishNotice("scoped")
	assert.Equal(t, "Notice: scoped\n", out.String())
}
