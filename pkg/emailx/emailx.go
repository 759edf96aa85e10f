package emailx

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Normalize canonicalizes an email for deduplication: lowercase, trimmed,
// and with any +tag suffix stripped from the local part, so that
// "A+promo@B.com" and "a@b.com" collide. The domain is left untouched.
// The raw email is stored separately; this form is only ever hashed.
func Normalize(email string) string {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	at := strings.IndexByte(trimmed, '@')
	if at == -1 {
		return trimmed
	}
	local, domain := trimmed[:at], trimmed[at+1:]
	if plus := strings.IndexByte(local, '+'); plus != -1 {
		local = local[:plus]
	}
	return local + "@" + domain
}

// HashHex returns the lowercase hex SHA-256 of s.
func HashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
