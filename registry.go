package valueptr

import (
	"reflect"
	"sync"
)

// registryKey combines type and codec for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// UseCodecCloner returns a cached codec cloner or builds a new one.
// The cloner is cached by type and codec content type, so type inspection
// runs once per pair. Safe for concurrent use.
func UseCodecCloner[T any](codec Codec) (*CodecCloner[T], error) {
	if codec == nil {
		return nil, newConfigError(ErrNilCapability, typeNameOf[T](), "codec")
	}
	key := registryKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*CodecCloner[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*CodecCloner[T]), nil
	}

	c, err := NewCodecCloner[T](codec)
	if err != nil {
		return nil, err
	}

	registry[key] = c
	return c, nil
}

// ResetRegistry clears the codec cloner registry.
// This is primarily useful for test isolation.
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
