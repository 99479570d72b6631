// Package yaml clones valueptr pointees through a gopkg.in/yaml.v3 round trip.
//
// Untagged fields are keyed by their lowercased name.
package yaml

import (
	"github.com/zoobzio/valueptr"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements valueptr.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() valueptr.Codec {
	return &yamlCodec{}
}

// Cloner returns the shared YAML cloner for T.
func Cloner[T any]() (*valueptr.CodecCloner[T], error) {
	return valueptr.UseCodecCloner[T](New())
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
