package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const sessionTokenBytes = 32

// HashPassword returns the hex SHA-256 digest of the plaintext. The digest is
// deliberately unsalted: the mobile client computes the same digest before
// transmission, and the stored user rows were written with this scheme.
// Changing it requires migrating every client and every stored credential.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewSessionToken returns a URL-safe random token with no padding characters.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
