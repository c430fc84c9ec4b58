package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// Hasher derives password digests with argon2id. The same password and
// salt always produce the same digest.
type Hasher struct {
	Iterations uint32
	MemoryKB   uint32
	Threads    uint8
}

func NewHasher(iterations, memoryKB uint32, threads uint8) *Hasher {
	return &Hasher{
		Iterations: max(iterations, 1),
		MemoryKB:   max(memoryKB, 8),
		Threads:    max(threads, 1),
	}
}

func DefaultHasher() *Hasher {
	return NewHasher(1, 64*1024, 4)
}

// Hash returns the hex-encoded argon2id digest of password under salt.
func (h *Hasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), h.Iterations, h.MemoryKB, h.Threads, keySize)
	return hex.EncodeToString(key)
}

// Verify recomputes the digest and compares it in constant time.
func (h *Hasher) Verify(password, salt, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(password, salt)), []byte(hash)) == 1
}

// GenerateSalt returns 128 random bits as unpadded URL-safe base64.
func GenerateSalt() (string, error) {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
