// Package bson provides a BSON codec implementation.
//
// Only documents can be encoded at the top level; scalars and slices fail.
package bson

import (
	"fmt"

	"github.com/zoobzio/cloak"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements cloak.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() cloak.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal checks that data is one well-formed document before decoding it
// into v, so truncated files fail with a framing error.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	if err := bson.Raw(data).Validate(); err != nil {
		return fmt.Errorf("malformed document: %w", err)
	}
	return bson.Unmarshal(data, v)
}
