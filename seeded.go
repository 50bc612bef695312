package cloak

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"
)

// chachaSource is a rand.Source reading a ChaCha20 keystream.
type chachaSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func (s *chachaSource) Uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// seededStream draws replacements in order from a generator seeded with the
// SHA-256 digest of the original value. A new stream is built for every call.
type seededStream struct {
	rng *rand.Rand
}

func newSeededStream(original string) *seededStream {
	key := sha256.Sum256([]byte(original))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(fmt.Sprintf("cloak: chacha20 setup: %v", err))
	}
	return &seededStream{rng: rand.New(&chachaSource{cipher: c})}
}

func (s *seededStream) Next(c Class, _ int) byte {
	return classBase(c) + byte(s.rng.IntN(int(classSize(c))))
}
