package valueptr

import (
	"context"
	"reflect"
	"time"
)

// Ptr owns at most one heap-allocated T together with the policies used to
// clone and destroy it.
//
// The zero value is an empty Ptr with zero-valued policies. That is ready to
// use when C and D are struct policies such as MethodCloner and HeapDeleter;
// interface or func typed policies must be supplied through NewWith.
//
// A Ptr must not be copied after first use. See the package documentation.
type Ptr[T any, C Cloner[T], D Deleter[T]] struct {
	_       noCopy
	target  *T
	cloner  C
	deleter D
}

// Empty returns a Ptr that owns nothing and uses the default policies.
func Empty[T any]() *Ptr[T, MethodCloner[T], HeapDeleter[T]] {
	return &Ptr[T, MethodCloner[T], HeapDeleter[T]]{}
}

// New takes ownership of p using the default policies.
// A nil p yields an empty Ptr.
func New[T any](p *T) *Ptr[T, MethodCloner[T], HeapDeleter[T]] {
	return &Ptr[T, MethodCloner[T], HeapDeleter[T]]{target: p}
}

// NewWithCloner takes ownership of p using cloner c and the default deleter.
// It panics with a *ConfigError if c is nil.
func NewWithCloner[T any, C Cloner[T]](p *T, c C) *Ptr[T, C, HeapDeleter[T]] {
	mustCapability[T](c, "cloner")
	return &Ptr[T, C, HeapDeleter[T]]{target: p, cloner: c}
}

// NewWithDeleter takes ownership of p using deleter d and the default cloner.
// It panics with a *ConfigError if d is nil.
func NewWithDeleter[T any, D Deleter[T]](p *T, d D) *Ptr[T, MethodCloner[T], D] {
	mustCapability[T](d, "deleter")
	return &Ptr[T, MethodCloner[T], D]{target: p, deleter: d}
}

// NewWith takes ownership of p using cloner c and deleter d.
// It panics with a *ConfigError if either policy is nil.
func NewWith[T any, C Cloner[T], D Deleter[T]](p *T, c C, d D) *Ptr[T, C, D] {
	mustCapability[T](c, "cloner")
	mustCapability[T](d, "deleter")
	return &Ptr[T, C, D]{target: p, cloner: c, deleter: d}
}

// Get returns the owned pointer without giving up ownership, or nil.
// The result must not outlive the Ptr's ownership of it.
func (p *Ptr[T, C, D]) Get() *T {
	return p.target
}

// Valid reports whether p owns a value.
func (p *Ptr[T, C, D]) Valid() bool {
	return p.target != nil
}

// Deref returns the owned pointer for member access.
// It panics with ErrEmpty if p is empty; check Valid first.
func (p *Ptr[T, C, D]) Deref() *T {
	if p.target == nil {
		panic(ErrEmpty)
	}
	return p.target
}

// Value returns a shallow copy of the owned value.
// It panics with ErrEmpty if p is empty.
func (p *Ptr[T, C, D]) Value() T {
	return *p.Deref()
}

// Cloner returns the stored cloner.
func (p *Ptr[T, C, D]) Cloner() C {
	return p.cloner
}

// Deleter returns the stored deleter.
func (p *Ptr[T, C, D]) Deleter() D {
	return p.deleter
}

// SetCloner replaces the stored cloner. It panics with a *ConfigError if c is nil.
func (p *Ptr[T, C, D]) SetCloner(c C) {
	mustCapability[T](c, "cloner")
	p.cloner = c
}

// SetDeleter replaces the stored deleter. The current value, if any, will be
// destroyed by d. It panics with a *ConfigError if d is nil.
func (p *Ptr[T, C, D]) SetDeleter(d D) {
	mustCapability[T](d, "deleter")
	p.deleter = d
}

// Clone returns a new, independently owned clone of the owned value, or nil
// if p is empty. p is never modified. The caller owns the result.
func (p *Ptr[T, C, D]) Clone() (*T, error) {
	if p.target == nil {
		return nil, nil
	}
	return cloneWith(p.target, p.cloner, p.deleter)
}

// Copy returns a new Ptr owning a clone of p's value, with copies of p's
// policies. If cloning fails, p is unchanged and no Ptr is returned.
func (p *Ptr[T, C, D]) Copy() (*Ptr[T, C, D], error) {
	clone, err := p.Clone()
	if err != nil {
		return nil, err
	}
	return &Ptr[T, C, D]{target: clone, cloner: p.cloner, deleter: p.deleter}, nil
}

// Assign replaces p's value with a clone of src's value and adopts src's
// policies. The old value is destroyed with p's old deleter, and only after
// the clone succeeded: on failure both p and src are unchanged.
func (p *Ptr[T, C, D]) Assign(src *Ptr[T, C, D]) error {
	clone, err := src.Clone()
	if err != nil {
		return err
	}
	p.Reset(clone)
	p.cloner = src.cloner
	p.deleter = src.deleter
	return nil
}

// Move returns a new Ptr holding p's value and policies. p is left empty
// with its policies in place.
func (p *Ptr[T, C, D]) Move() *Ptr[T, C, D] {
	return &Ptr[T, C, D]{target: p.take(), cloner: p.cloner, deleter: p.deleter}
}

// MoveFrom destroys p's current value, then takes src's value and policies,
// leaving src empty. Moving a Ptr into itself does nothing.
func (p *Ptr[T, C, D]) MoveFrom(src *Ptr[T, C, D]) {
	if src == p {
		return
	}
	p.Reset(src.take())
	p.cloner = src.cloner
	p.deleter = src.deleter
}

// Reset destroys the owned value and takes ownership of np instead. No clone
// is made. Resetting with the currently owned pointer is a no-op.
func (p *Ptr[T, C, D]) Reset(np *T) {
	if np == p.target {
		return
	}
	old := p.target
	p.target = np
	p.destroy(old)
}

// Release gives up ownership and returns the owned pointer, or nil.
// Neither policy is invoked; the caller is now responsible for the value.
func (p *Ptr[T, C, D]) Release() *T {
	old := p.take()
	if old != nil {
		emitRelease(context.Background(), typeNameOf[T]())
	}
	return old
}

// Swap exchanges the values and policies of p and other.
func (p *Ptr[T, C, D]) Swap(other *Ptr[T, C, D]) {
	p.target, other.target = other.target, p.target
	p.cloner, other.cloner = other.cloner, p.cloner
	p.deleter, other.deleter = other.deleter, p.deleter
}

// Close destroys the owned value, leaving p empty. It always returns nil and
// is safe to call more than once.
func (p *Ptr[T, C, D]) Close() error {
	p.Reset(nil)
	return nil
}

// take detaches the target without notifying anyone.
func (p *Ptr[T, C, D]) take() *T {
	old := p.target
	p.target = nil
	return old
}

func (p *Ptr[T, C, D]) destroy(old *T) {
	if old == nil {
		return
	}
	p.deleter.Delete(old)
	emitDelete(context.Background(), typeNameOf[T]())
}

// cloneWith runs cloner c on src. A partial clone returned alongside an
// error is handed to d before the error propagates.
func cloneWith[T any, C Cloner[T], D Deleter[T]](src *T, c C, d D) (*T, error) {
	start := time.Now()
	typeName := typeNameOf[T]()

	out, err := c.Clone(src)
	switch {
	case err != nil:
		if out != nil && out != src {
			d.Delete(out)
			emitDelete(context.Background(), typeName)
		}
		out, err = nil, newCloneError(ErrClone, typeName, err)
	case out == nil:
		err = newCloneError(ErrNilClone, typeName, nil)
	case out == src:
		out, err = nil, newCloneError(ErrAliasedClone, typeName, nil)
	}

	emitCloneComplete(context.Background(), typeName, time.Since(start), err)
	return out, err
}

// mustCapability panics if policy is a nil interface, func, or pointer.
func mustCapability[T any](policy any, field string) {
	if isNilCapability(policy) {
		panic(newConfigError(ErrNilCapability, typeNameOf[T](), field))
	}
}

func isNilCapability(policy any) bool {
	if policy == nil {
		return true
	}
	rv := reflect.ValueOf(policy)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}

// noCopy lets go vet's copylocks check flag Ptr values copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
