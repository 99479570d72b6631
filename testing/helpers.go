// Package testing provides test utilities for valueptr.
package testing

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/zoobzio/valueptr"
)

// ErrInjected is returned by FailingCloner on its configured call.
var ErrInjected = errors.New("injected clone failure")

// Counter is a test pointee with a reference field and its own Clone method.
type Counter struct {
	N    int
	Tags []string
}

// Clone implements the fallible clone method used by valueptr.MethodCloner.
func (c *Counter) Clone() (*Counter, error) {
	return &Counter{N: c.N, Tags: slices.Clone(c.Tags)}, nil
}

// Resource is a test pointee implementing io.Closer.
type Resource struct {
	Name     string
	Closed   bool
	CloseErr error
}

// Close marks the resource closed and returns CloseErr.
func (r *Resource) Close() error {
	r.Closed = true
	return r.CloseErr
}

// FailingCloner wraps a cloner and fails on one chosen call.
// Use it as a pointer policy so copies of a Ptr share the call count.
type FailingCloner[T any] struct {
	mu     sync.Mutex
	next   valueptr.Cloner[T]
	failOn int
	calls  int

	// Partial makes the failing call return a fresh partial value along with
	// the error, exercising cleanup of partial clones.
	Partial bool
}

// NewFailingCloner returns a cloner delegating to next that fails on call
// number failOn (1-based). A failOn of zero or less never fails.
func NewFailingCloner[T any](failOn int, next valueptr.Cloner[T]) *FailingCloner[T] {
	return &FailingCloner[T]{next: next, failOn: failOn}
}

// Clone implements valueptr.Cloner.
func (f *FailingCloner[T]) Clone(src *T) (*T, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if call == f.failOn {
		err := fmt.Errorf("%w on call %d", ErrInjected, call)
		if f.Partial {
			return new(T), err
		}
		return nil, err
	}
	return f.next.Clone(src)
}

// Calls returns how many times Clone has been called.
func (f *FailingCloner[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// CountingDeleter records every pointer it is asked to delete.
// Use it as a pointer policy so copies of a Ptr share the record.
type CountingDeleter[T any] struct {
	mu      sync.Mutex
	deletes map[*T]int
	order   []*T
}

// NewCountingDeleter returns an empty CountingDeleter.
func NewCountingDeleter[T any]() *CountingDeleter[T] {
	return &CountingDeleter[T]{deletes: make(map[*T]int)}
}

// Delete implements valueptr.Deleter.
func (d *CountingDeleter[T]) Delete(p *T) {
	if p == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deletes[p]++
	d.order = append(d.order, p)
}

// Count returns how many times p was deleted.
func (d *CountingDeleter[T]) Count(p *T) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deletes[p]
}

// Total returns the number of Delete calls with a non-nil pointer.
func (d *CountingDeleter[T]) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// Deleted returns the deleted pointers in call order.
func (d *CountingDeleter[T]) Deleted() []*T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.order)
}
