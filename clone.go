package valueptr

// Cloneable is implemented by types that copy themselves by value.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or
// maps, ensure these are also copied to achieve true isolation.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
//
// MethodCloner also accepts the pointer forms Clone() *T and
// Clone() (*T, error).
type Cloneable[T any] interface {
	Clone() T
}

// pointerCloneable is the infallible pointer form of a clone method.
type pointerCloneable[T any] interface {
	Clone() *T
}

// fallibleCloneable is the pointer form of a clone method that can fail.
type fallibleCloneable[T any] interface {
	Clone() (*T, error)
}
