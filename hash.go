package cloak

import (
	"encoding/binary"
	"strconv"

	"github.com/minio/sha256-simd"
)

// keystream yields the replacement for one substituted character.
// Next is only called for ClassDigit, ClassUpper and ClassLower, in strictly
// increasing position order.
type keystream interface {
	Next(c Class, position int) byte
}

// HashKey derives the keystream value for a position of original.
//
// The digest input is the decimal form of position immediately followed by
// the bytes of original. The value is the first four bytes of the SHA-256
// digest read as a big-endian uint32.
func HashKey(original string, position int) uint32 {
	buf := make([]byte, 0, len(original)+20)
	return hashKey(buf, original, position)
}

func hashKey(buf []byte, original string, position int) uint32 {
	buf = strconv.AppendInt(buf, int64(position), 10)
	buf = append(buf, original...)
	sum := sha256.Sum256(buf)
	return binary.BigEndian.Uint32(sum[:4])
}

// substitute maps a keystream value into the range of class c.
func substitute(c Class, v uint32) byte {
	return classBase(c) + byte(v%classSize(c))
}

// hashStream derives every position independently from the full original.
type hashStream struct {
	original string
	buf      []byte
}

func newHashStream(original string) *hashStream {
	return &hashStream{
		original: original,
		buf:      make([]byte, 0, len(original)+20),
	}
}

func (s *hashStream) Next(c Class, position int) byte {
	return substitute(c, hashKey(s.buf[:0], s.original, position))
}
