// Package json provides a JSON codec implementation.
//
// Output is indented and leaves non-ASCII text and HTML characters unescaped
// so vector files stay readable and diffable.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/cloak"
)

// jsonCodec implements cloak.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() cloak.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as indented JSON without HTML escaping.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON data into v, rejecting unknown fields.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
