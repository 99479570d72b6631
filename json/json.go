// Package json clones valueptr pointees through an encoding/json round trip.
//
// Only exported fields survive, and each comes back under its json tag.
// Numbers decode into the declared field type, so typed numeric fields keep
// their precision.
package json

import (
	"encoding/json"

	"github.com/zoobzio/valueptr"
)

// jsonCodec implements valueptr.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() valueptr.Codec {
	return &jsonCodec{}
}

// Cloner returns the shared JSON cloner for T.
func Cloner[T any]() (*valueptr.CodecCloner[T], error) {
	return valueptr.UseCodecCloner[T](New())
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
