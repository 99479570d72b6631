// Package bson clones valueptr pointees through a BSON round trip.
//
// A BSON value must be a document at the top level: struct and map pointees
// clone, while scalars and slices fail with valueptr.ErrMarshal.
package bson

import (
	"github.com/zoobzio/valueptr"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements valueptr.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() valueptr.Codec {
	return &bsonCodec{}
}

// Cloner returns the shared BSON cloner for T.
func Cloner[T any]() (*valueptr.CodecCloner[T], error) {
	return valueptr.UseCodecCloner[T](New())
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
