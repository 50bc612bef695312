// Package cbor provides a CBOR codec implementation.
//
// Encoding uses the core deterministic mode so equal vector sets always
// produce equal bytes. Struct fields fall back to their json tags.
package cbor

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/cloak"
)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// cborCodec implements cloak.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() cloak.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as deterministic CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
