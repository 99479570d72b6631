package valueptr

import (
	"fmt"

	clone "github.com/huandu/go-clone"
)

// MethodCloner is the default cloner. It calls the pointee's own clone
// method, trying in order:
//
//	Clone() (*T, error)
//	Clone() *T
//	Clone() T
//
// Methods declared on either T or *T are found. Types with none of these
// fail with ErrNotCloneable.
type MethodCloner[T any] struct{}

// Clone implements Cloner.
func (MethodCloner[T]) Clone(src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}
	switch c := any(src).(type) {
	case fallibleCloneable[T]:
		return c.Clone()
	case pointerCloneable[T]:
		return c.Clone(), nil
	case Cloneable[T]:
		v := c.Clone()
		return &v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotCloneable, typeNameOf[T]())
}

// ClonerFunc adapts a function to the Cloner interface.
type ClonerFunc[T any] func(src *T) (*T, error)

// Clone implements Cloner.
func (f ClonerFunc[T]) Clone(src *T) (*T, error) {
	return f(src)
}

// ShallowCloner copies the pointee by assignment. Slices, maps and pointers
// inside T are shared with the source.
type ShallowCloner[T any] struct{}

// Clone implements Cloner.
func (ShallowCloner[T]) Clone(src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}
	v := *src
	return &v, nil
}

// DeepCloner copies the pointee recursively with reflection, including
// unexported fields. Set Cyclic for values that may contain pointer cycles;
// it is slower.
type DeepCloner[T any] struct {
	Cyclic bool
}

// Clone implements Cloner.
func (c DeepCloner[T]) Clone(src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}
	var out any
	if c.Cyclic {
		out = clone.Slowly(src)
	} else {
		out = clone.Clone(src)
	}
	dst, ok := out.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: deep clone produced %T", ErrUnsupportedType, out)
	}
	return dst, nil
}
