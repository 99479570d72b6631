package valueptr

import (
	"context"
	"io"
)

// HeapDeleter is the default deleter. It drops the reference and leaves
// reclamation to the garbage collector.
type HeapDeleter[T any] struct{}

// Delete implements Deleter.
func (HeapDeleter[T]) Delete(*T) {}

// DeleterFunc adapts a function to the Deleter interface.
// The function is not called for nil.
type DeleterFunc[T any] func(p *T)

// Delete implements Deleter.
func (f DeleterFunc[T]) Delete(p *T) {
	if p == nil {
		return
	}
	f(p)
}

// CloseDeleter closes pointees that implement io.Closer. Pointees that do not
// are dropped like HeapDeleter does.
//
// Deleting cannot fail, so a Close error is reported on SignalDeleteFailed
// instead of being returned.
type CloseDeleter[T any] struct{}

// Delete implements Deleter.
func (CloseDeleter[T]) Delete(p *T) {
	if p == nil {
		return
	}
	c, ok := any(p).(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		emitDeleteFailed(context.Background(), typeNameOf[T](), err)
	}
}

// ZeroDeleter overwrites the pointee with its zero value before dropping it.
// Use it for pointees holding secrets.
type ZeroDeleter[T any] struct{}

// Delete implements Deleter.
func (ZeroDeleter[T]) Delete(p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
}
