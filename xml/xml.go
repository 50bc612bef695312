// Package xml provides an XML codec implementation.
//
// XML 1.0 cannot carry every string: most C0 control characters, surrogates
// and U+FFFE/U+FFFF have no representation. Marshal fails on them rather than
// writing a substitute.
package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/zoobzio/cloak"
)

// xmlCodec implements cloak.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() cloak.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as indented XML with the standard header.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if err := checkText(reflect.ValueOf(v)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Unmarshal decodes XML data into v using a strict decoder.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	return dec.Decode(v)
}

// checkText walks every string reachable from rv and rejects the first one
// that XML cannot represent.
func checkText(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		return checkString(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return checkText(rv.Elem())
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !rv.Type().Field(i).IsExported() {
				continue
			}
			if err := checkText(rv.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := checkText(rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if err := checkText(iter.Key()); err != nil {
				return err
			}
			if err := checkText(iter.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkString(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("invalid UTF-8 at byte %d", i)
		}
		if !isChar(r) {
			return fmt.Errorf("character U+%04X at byte %d is not allowed in XML", r, i)
		}
		i += size
	}
	return nil
}

// isChar reports whether r is in the XML 1.0 Char production.
func isChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
