// Package vectors carries conformance vectors for cloak: recorded inputs and
// the outputs a conforming implementation must produce for them.
//
// A vector set is plain data and can be stored with any cloak.Codec. Hash
// mode vectors are portable and can be checked against implementations in
// other languages. Seeded mode vectors only hold for the build that
// generated them.
package vectors

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/zoobzio/cloak"
	"github.com/zoobzio/cloak/json"
)

// Version is the vector set format version written by this package.
const Version = 1

// Kind is the scalar type a vector's input represents.
type Kind string

const (
	// KindString vectors mask their input as text.
	KindString Kind = "string"

	// KindInt vectors hold a base-10 integer of any magnitude.
	KindInt Kind = "int"
)

// Vector is one recorded masking result.
type Vector struct {
	Mode   cloak.Mode `json:"mode" yaml:"mode" bson:"mode" xml:"mode,attr"`
	Kind   Kind       `json:"kind" yaml:"kind" bson:"kind" xml:"kind,attr"`
	Input  string     `json:"input" yaml:"input" bson:"input" xml:"input"`
	Output string     `json:"output" yaml:"output" bson:"output" xml:"output"`
}

// Set is a versioned list of vectors.
type Set struct {
	XMLName xml.Name `json:"-" yaml:"-" bson:"-" xml:"vectors"`
	Version int      `json:"version" yaml:"version" bson:"version" xml:"version,attr"`
	Vectors []Vector `json:"vectors" yaml:"vectors" bson:"vectors" xml:"vector"`
}

//go:embed golden.json
var golden []byte

// Golden returns the canonical hash mode vectors shipped with this package.
func Golden() (*Set, error) {
	return Decode(json.New(), golden)
}

// Generate masks each input with mode and records the results.
func Generate(mode cloak.Mode, kind Kind, inputs ...string) (*Set, error) {
	set := &Set{Version: Version, Vectors: make([]Vector, 0, len(inputs))}
	for i, in := range inputs {
		v := Vector{Mode: mode, Kind: kind, Input: in}
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out, err := v.run()
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		v.Output = out
		set.Vectors = append(set.Vectors, v)
	}
	return set, nil
}

// Decode reads a vector set with c and validates it.
func Decode(c cloak.Codec, data []byte) (*Set, error) {
	var set Set
	if err := c.Unmarshal(data, &set); err != nil {
		return nil, newCodecError(ErrUnmarshal, c.ContentType(), err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Encode validates set and writes it with c.
func Encode(c cloak.Codec, set *Set) ([]byte, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	data, err := c.Marshal(set)
	if err != nil {
		return nil, newCodecError(ErrMarshal, c.ContentType(), err)
	}
	return data, nil
}

// Validate checks the set version and every vector's mode, kind and input.
func (s *Set) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil set", ErrInvalidVector)
	}
	if s.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidVector, s.Version)
	}
	for i := range s.Vectors {
		if err := s.Vectors[i].validate(); err != nil {
			return fmt.Errorf("vector %d: %w", i, err)
		}
	}
	return nil
}

// validate rejects text that is not valid UTF-8, since not every codec can
// carry it byte for byte.
func (v Vector) validate() error {
	if !cloak.IsValidMode(v.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidVector, v.Mode)
	}
	if !utf8.ValidString(v.Input) {
		return fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidVector)
	}
	if !utf8.ValidString(v.Output) {
		return fmt.Errorf("%w: output is not valid UTF-8", ErrInvalidVector)
	}
	switch v.Kind {
	case KindString:
	case KindInt:
		if _, ok := new(big.Int).SetString(v.Input, 10); !ok {
			return fmt.Errorf("%w: input is not a base-10 integer", ErrInvalidVector)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidVector, v.Kind)
	}
	return nil
}

// run masks the vector input and returns the output in text form.
func (v Vector) run() (string, error) {
	switch v.Kind {
	case KindInt:
		n, _ := new(big.Int).SetString(v.Input, 10)
		out, err := cloak.MaskAny(v.Mode, n)
		if err != nil {
			return "", err
		}
		return out.(*big.Int).String(), nil
	default:
		return cloak.Mask(v.Mode, v.Input)
	}
}
