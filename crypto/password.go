package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"os"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSalt is the fallback when AUTH_SALT is not set
	DefaultSalt = "tana_salt"

	digestIterations = 4096
	digestKeyLength  = 32
)

// PasswordHasher produces deterministic salted password digests. The salt is
// process-wide, so equal passwords always yield equal digests and verification
// is a recompute-and-compare.
type PasswordHasher struct {
	salt []byte
}

// NewPasswordHasher creates a hasher with an explicit salt
func NewPasswordHasher(salt string) *PasswordHasher {
	if salt == "" {
		salt = DefaultSalt
	}
	return &PasswordHasher{salt: []byte(salt)}
}

// NewPasswordHasherFromEnv creates a hasher salted from AUTH_SALT
func NewPasswordHasherFromEnv() *PasswordHasher {
	return NewPasswordHasher(os.Getenv("AUTH_SALT"))
}

// Hash derives a hex digest from the password and the process-wide salt
func (h *PasswordHasher) Hash(password string) string {
	key := pbkdf2.Key([]byte(password), h.salt, digestIterations, digestKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the digest and compares it with the stored one
func (h *PasswordHasher) Verify(password, storedDigest string) bool {
	digest := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
