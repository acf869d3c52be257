package admin

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// verifySecret checks a login against the configured credential store.
// Secrets stored as bcrypt hashes are verified as such; plain secrets are
// compared in constant time. The caller never learns which of the two
// (username, secret) was wrong.
func verifySecret(passwords map[string]string, username, secret string) bool {
	stored, ok := passwords[username]
	if !ok {
		return false
	}

	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(secret)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
