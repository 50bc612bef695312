// Package cloak provides deterministic, format-preserving masking of string
// and integer values.
//
// Every ASCII digit is replaced by a digit, every ASCII uppercase letter by an
// uppercase letter and every ASCII lowercase letter by a lowercase letter.
// All other characters, including every non-ASCII code point, are copied
// unchanged. The same input always produces the same output.
//
// # Modes
//
// Two keystream modes are provided:
//
//   - hash: portable, bit-exact across runtimes and languages
//   - seeded: repeatable within one build of this module only
//
// Pipelines that mask the same data from different engines must use the
// hash mode.
//
// # Hash Mode Contract
//
// For the character at position i (counted in code points from zero) of the
// original value s:
//
//	digest = SHA-256(decimal(i) || s)
//	v      = big-endian uint32 of digest[0:4]
//
//	digit: '0' + v % 10
//	upper: 'A' + v % 26
//	lower: 'a' + v % 26
//
// No digest is computed for characters that are passed through. For
// s = "a1B" the digest input at position 0 is the five bytes "0a1B".
//
// # Basic Usage
//
//	masked, _ := cloak.ConsistentMaskHash("Hello, World!") // "Fyzdg, Ygphm!"
//	id, err := cloak.ConsistentMaskHash(int64(1234567890)) // 8622436472
//
//	// Dynamic engines delivering boxed scalars
//	v, err := cloak.ConsistentMaskHashAny(row["ssn"])
//
// # Integers
//
// Integers are masked in base-10 form and parsed back to the input type.
// Leading zeros produced by masking are dropped on the way back, and a
// masked negative zero reads as 0. A result that overflows the input type
// fails with ErrEncoding; use MaskBigHash for values of arbitrary magnitude.
//
// # Errors
//
// Masking errors never contain the unmasked input and are never resolved by
// returning the input. Failures are also emitted as SignalMaskFailed.
//
// # Conformance Vectors
//
// The vectors subpackage carries golden input/output pairs and checks any
// set of them against this implementation. Vector sets can be read and
// written with the codec subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - CBOR encoding (application/cbor)
//   - bson - BSON encoding (application/bson)
package cloak
