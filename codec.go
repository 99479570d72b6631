package valueptr

import (
	"context"
	"go/token"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// CodecCloner clones a pointee by encoding it and decoding the result into a
// fresh allocation. Only what the codec round-trips survives: unexported
// fields and fields the codec skips come back zeroed.
//
// CodecCloner is used as a pointer policy; a nil *CodecCloner is rejected by
// the Ptr constructors.
type CodecCloner[T any] struct {
	codec    Codec
	typeName string
}

// NewCodecCloner returns a cloner for T backed by codec.
//
// T is inspected up front: a field of interface type, or a slice, array or
// map of interfaces, cannot be decoded back into and is rejected with a
// *ConfigError wrapping ErrUnsupportedType. Structs reached through pointers,
// slices, arrays and map values are inspected the same way.
func NewCodecCloner[T any](codec Codec) (*CodecCloner[T], error) {
	typeName := typeNameOf[T]()
	if codec == nil {
		return nil, newConfigError(ErrNilCapability, typeName, "codec")
	}

	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Struct {
		if err := checkDecodable(sentinel.Scan[T](), typeName, "", map[reflect.Type]bool{rt: true}); err != nil {
			return nil, err
		}
	} else {
		if field, ok := interfaceAt(rt); ok {
			return nil, newConfigError(ErrUnsupportedType, typeName, field)
		}
		if err := checkElem(rt, typeName, "", map[reflect.Type]bool{}); err != nil {
			return nil, err
		}
	}

	c := &CodecCloner[T]{codec: codec, typeName: typeName}
	emitCodecClonerCreated(context.Background(), codec.ContentType(), typeName)
	return c, nil
}

// ContentType returns the content type of the underlying codec.
func (c *CodecCloner[T]) ContentType() string {
	return c.codec.ContentType()
}

// Clone implements Cloner.
func (c *CodecCloner[T]) Clone(src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}
	data, err := c.codec.Marshal(src)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	dst := new(T)
	if err := c.codec.Unmarshal(data, dst); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return dst, nil
}

// checkDecodable walks struct metadata and nested structs looking for fields
// a codec cannot decode into.
func checkDecodable(spec sentinel.Metadata, typeName, namePrefix string, seen map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		rt := field.ReflectType
		if rt == nil || !token.IsExported(field.Name) {
			continue
		}
		if field.Kind == sentinel.KindInterface {
			return newConfigError(ErrUnsupportedType, typeName, fullName)
		}
		if _, ok := interfaceAt(rt); ok {
			return newConfigError(ErrUnsupportedType, typeName, fullName)
		}

		if err := checkElem(rt, typeName, fullName, seen); err != nil {
			return err
		}
	}
	return nil
}

// checkElem descends into the struct type rt holds, directly or as the
// element of pointers, slices, arrays and maps.
func checkElem(rt reflect.Type, typeName, fieldName string, seen map[reflect.Type]bool) error {
	nested := baseType(rt)
	if nested.Kind() != reflect.Struct || seen[nested] {
		return nil
	}
	seen[nested] = true
	return checkDecodable(scanNestedType(nested), typeName, fieldName, seen)
}

// baseType strips pointer, slice, array and map layers off rt.
func baseType(rt reflect.Type) reflect.Type {
	for {
		switch rt.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
			rt = rt.Elem()
		default:
			return rt
		}
	}
}

// interfaceAt reports whether rt is, or directly contains as element or map
// value, an interface type.
func interfaceAt(rt reflect.Type) (string, bool) {
	for {
		switch rt.Kind() {
		case reflect.Interface:
			return rt.String(), true
		case reflect.Ptr, reflect.Slice, reflect.Array:
			rt = rt.Elem()
		case reflect.Map:
			if rt.Key().Kind() == reflect.Interface {
				return rt.String(), true
			}
			rt = rt.Elem()
		default:
			return "", false
		}
	}
}

// scanNestedType returns metadata for a nested struct type, preferring
// sentinel's cache.
func scanNestedType(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		}
		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}
		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}
