// Package xml clones valueptr pointees through an encoding/xml round trip.
//
// encoding/xml cannot encode maps, so a pointee with a map field fails to
// clone with valueptr.ErrMarshal.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/valueptr"
)

// xmlCodec implements valueptr.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() valueptr.Codec {
	return &xmlCodec{}
}

// Cloner returns the shared XML cloner for T.
func Cloner[T any]() (*valueptr.CodecCloner[T], error) {
	return valueptr.UseCodecCloner[T](New())
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
