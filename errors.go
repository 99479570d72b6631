package valueptr

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrClone indicates the cloner failed to duplicate a pointee.
	ErrClone = errors.New("clone failed")

	// ErrNilClone indicates the cloner returned nil for a non-nil source.
	ErrNilClone = errors.New("cloner returned nil")

	// ErrAliasedClone indicates the cloner returned the source pointer itself.
	ErrAliasedClone = errors.New("cloner returned the source pointer")

	// ErrNotCloneable indicates the pointee has no usable Clone method.
	ErrNotCloneable = errors.New("type has no clone method")

	// ErrConversion indicates a conversion function returned nil for a clone.
	ErrConversion = errors.New("conversion returned nil")

	// ErrEmpty is the panic value for dereferencing an empty Ptr.
	ErrEmpty = errors.New("dereference of empty pointer")

	// ErrNilCapability indicates a nil cloner, deleter, or codec was supplied.
	ErrNilCapability = errors.New("nil capability")

	// ErrUnsupportedType indicates a type cannot be used with a policy.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMarshal indicates the codec failed to marshal a pointee.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal a pointee.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// CloneError represents a failed clone.
// It wraps a sentinel error with the pointee type and the cloner's own error.
type CloneError struct {
	Err      error  // Underlying sentinel error (ErrClone, ErrNilClone, etc.)
	TypeName string // Pointee type
	Cause    error  // Original error from the cloner
}

func (e *CloneError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s for %s: %v", e.Err.Error(), e.TypeName, e.Cause)
	}
	return fmt.Sprintf("%s for %s", e.Err.Error(), e.TypeName)
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *CloneError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// ConfigError represents a policy configuration error.
type ConfigError struct {
	Err      error  // Underlying sentinel error (ErrNilCapability, ErrUnsupportedType)
	TypeName string // Pointee type
	Field    string // Policy or struct field that triggered the error
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.TypeName != "" {
		return fmt.Sprintf("%s for %s (%s)", e.Err.Error(), e.TypeName, e.Field)
	}
	if e.TypeName != "" {
		return fmt.Sprintf("%s for %s", e.Err.Error(), e.TypeName)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newCloneError creates a CloneError for a failed clone.
func newCloneError(sentinel error, typeName string, cause error) error {
	return &CloneError{
		Err:      sentinel,
		TypeName: typeName,
		Cause:    cause,
	}
}

// newConfigError creates a ConfigError for policy misuse.
func newConfigError(sentinel error, typeName, field string) error {
	return &ConfigError{
		Err:      sentinel,
		TypeName: typeName,
		Field:    field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
