package crypto

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewToken generates an opaque bearer token: 32 hex characters of
// crypto/rand-backed UUID material. Collision resistance is the only
// uniqueness guarantee; no store-side check is performed.
func NewToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
