// Package valueptr provides an owning pointer with value semantics.
//
// A Ptr owns at most one heap-allocated value. Copying a Ptr clones the
// pointee through a stored Cloner policy instead of aliasing it, and
// destroying or resetting a Ptr hands the old pointee to a stored Deleter
// policy. This lets polymorphic or heap-allocated values live inside
// structs and containers without hand-written deep copy code.
//
// # Basic Usage
//
//	type Config struct {
//	    Name  string
//	    Hosts []string
//	}
//
//	func (c *Config) Clone() (*Config, error) {
//	    return &Config{Name: c.Name, Hosts: slices.Clone(c.Hosts)}, nil
//	}
//
//	p := valueptr.New(&Config{Name: "primary"})
//	defer p.Close()
//
//	// Copy clones the pointee; p is untouched if cloning fails.
//	q, err := p.Copy()
//
//	// Move transfers ownership; p is empty afterwards.
//	r := p.Move()
//
// # Ownership
//
// A Ptr is an owner, not a handle: it must not be copied by assignment,
// which would leave two owners of one allocation. Use Copy or Assign to
// duplicate, Move or MoveFrom to transfer, and Release to give up ownership.
// go vet reports accidental struct copies.
//
// Only cloning can fail. Move, Reset, Release, Swap and Close never fail.
// When cloning fails every Ptr taking part in the operation is left as it
// was.
//
// # Policies
//
// Cloners:
//
//   - MethodCloner - default, calls the pointee's own Clone method
//   - ClonerFunc - adapts a plain function
//   - DeepCloner - reflection deep copy (github.com/huandu/go-clone)
//   - ShallowCloner - copies the pointee by assignment
//   - CodecCloner - serialization round-trip through a Codec
//
// Deleters:
//
//   - HeapDeleter - default, leaves reclamation to the garbage collector
//   - DeleterFunc - adapts a plain function
//   - CloseDeleter - closes pointees implementing io.Closer
//   - ZeroDeleter - overwrites the pointee with its zero value
//
// # Codec Providers
//
// The following codec implementations are available as sub-packages for
// use with CodecCloner:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Concurrency
//
// A Ptr is not safe for concurrent use. Hand a Ptr to another goroutine by
// moving it; concurrent calls on the same Ptr need external locking.
package valueptr

// Cloner produces a new, independently owned duplicate of src.
//
// Clone is only called with a non-nil src. It must either return a new
// allocation and a nil error, or a non-nil error. A value returned together
// with an error is treated as a partial clone and handed to the deleter.
type Cloner[T any] interface {
	Clone(src *T) (*T, error)
}

// Deleter destroys a pointee that is no longer owned.
//
// Delete must accept nil as a no-op and must not fail. Ptr never passes nil,
// but deleters are also used directly.
type Deleter[T any] interface {
	Delete(p *T)
}
