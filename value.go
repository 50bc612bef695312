package cloak

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"strconv"
)

// Value is the set of scalar types that can be masked with their type kept.
type Value interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ConsistentMaskHash masks v with the hash keystream and returns a value of
// the same type.
//
// Integers are masked in their base-10 form and parsed back at the same bit
// size. The masked digits may start with zeros or follow a lone minus sign,
// so the parsed result can be shorter than the input ("42" may become "02",
// read back as 2). A masked integer that overflows its type returns an
// *EncodingError wrapping ErrEncoding and the zero value.
func ConsistentMaskHash[V Value](v V) (V, error) {
	return maskValue(ModeHash, HashMasker(), v)
}

// ConsistentMask masks v with the seeded keystream. See ConsistentMaskHash
// for the integer conversion rules.
func ConsistentMask[V Value](v V) (V, error) {
	return maskValue(ModeSeeded, SeededMasker(), v)
}

// Mask masks v with the keystream selected by mode.
func Mask[V Value](mode Mode, v V) (V, error) {
	m, err := MaskerFor(mode)
	if err != nil {
		var zero V
		return zero, err
	}
	return maskValue(mode, m, v)
}

// ConsistentMaskHashAny masks a boxed scalar with the hash keystream.
// Accepted inputs are strings, integers of any kind and *big.Int; anything
// else fails with ErrUnsupportedType.
func ConsistentMaskHashAny(v any) (any, error) {
	return maskAny(ModeHash, HashMasker(), v)
}

// ConsistentMaskAny masks a boxed scalar with the seeded keystream.
func ConsistentMaskAny(v any) (any, error) {
	return maskAny(ModeSeeded, SeededMasker(), v)
}

// MaskAny masks a boxed scalar with the keystream selected by mode.
func MaskAny(mode Mode, v any) (any, error) {
	m, err := MaskerFor(mode)
	if err != nil {
		return nil, err
	}
	return maskAny(mode, m, v)
}

// MaskBigHash masks an integer of arbitrary magnitude with the hash keystream.
func MaskBigHash(n *big.Int) (*big.Int, error) {
	return maskBig(ModeHash, HashMasker(), n)
}

// MaskBig masks an integer of arbitrary magnitude with the seeded keystream.
func MaskBig(n *big.Int) (*big.Int, error) {
	return maskBig(ModeSeeded, SeededMasker(), n)
}

func maskValue[V Value](mode Mode, m Masker, v V) (V, error) {
	out, err := maskReflect(mode, m, reflect.ValueOf(v))
	if err != nil {
		var zero V
		return zero, err
	}
	return out.Interface().(V), nil
}

func maskAny(mode Mode, m Masker, v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, fail(mode, "<nil>", "", ErrUnsupportedType, nil)
	case *big.Int:
		out, err := maskBig(mode, m, x)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := maskReflect(mode, m, reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// maskReflect masks rv and returns a new value of the same type.
func maskReflect(mode Mode, m Masker, rv reflect.Value) (reflect.Value, error) {
	typ := rv.Type()
	out := reflect.New(typ).Elem()

	switch rv.Kind() {
	case reflect.String:
		out.SetString(m.Mask(rv.String()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		masked := m.Mask(strconv.FormatInt(rv.Int(), 10))
		n, err := strconv.ParseInt(masked, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, fail(mode, typ.String(), masked, ErrEncoding, err)
		}
		out.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		masked := m.Mask(strconv.FormatUint(rv.Uint(), 10))
		n, err := strconv.ParseUint(masked, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, fail(mode, typ.String(), masked, ErrEncoding, err)
		}
		out.SetUint(n)

	default:
		return reflect.Value{}, fail(mode, typ.String(), "", ErrUnsupportedType, nil)
	}

	return out, nil
}

func maskBig(mode Mode, m Masker, n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, fail(mode, "*big.Int", "", ErrUnsupportedType, nil)
	}
	masked := m.Mask(n.String())
	out, ok := new(big.Int).SetString(masked, 10)
	if !ok {
		return nil, fail(mode, "*big.Int", masked, ErrEncoding, errors.New("not a base-10 integer"))
	}
	return out, nil
}

// fail builds the error for a failed mask and emits it.
func fail(mode Mode, typ, masked string, sentinel, cause error) error {
	err := newEncodingError(sentinel, mode, typ, masked, cause)
	emitMaskFailed(context.Background(), mode, typ, err)
	return err
}
