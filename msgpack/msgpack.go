// Package msgpack clones valueptr pointees through a MessagePack round trip.
//
// Untagged fields are keyed by their Go field name.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/valueptr"
)

// msgpackCodec implements valueptr.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() valueptr.Codec {
	return &msgpackCodec{}
}

// Cloner returns the shared MessagePack cloner for T.
func Cloner[T any]() (*valueptr.CodecCloner[T], error) {
	return valueptr.UseCodecCloner[T](New())
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
