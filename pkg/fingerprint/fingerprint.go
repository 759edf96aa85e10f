package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Sentinels stored in place of an IP prefix when none can be derived.
const (
	PrefixUnknown = "unknown"
	PrefixV6      = "v6-or-unknown"
)

// Fingerprint approximates "same visitor" with three coarse dimensions.
// A match on any single dimension is treated as the same visitor, biasing
// toward under-counting. This is a heuristic, not an anti-fraud guarantee:
// the same person on two devices counts twice, and distinct visitors behind
// one NAT /24 count once.
type Fingerprint struct {
	IP24      string // /24 network prefix, or a sentinel
	UAHash    string // SHA-256 hex of the raw User-Agent header
	VisitorID string // long-lived opaque cookie value
}

func New(ip, userAgent, visitorID string) Fingerprint {
	return Fingerprint{
		IP24:      IPTo24(ip),
		UAHash:    hashHex(userAgent),
		VisitorID: visitorID,
	}
}

// IPTo24 truncates an IPv4 address to its /24 prefix label. IPv6 and
// unparseable addresses collapse into sentinel buckets.
func IPTo24(ip string) string {
	if ip == "" {
		return PrefixUnknown
	}
	if strings.Contains(ip, ":") {
		return PrefixV6
	}
	parts := strings.Split(ip, ".")
	if len(parts) < 3 {
		return PrefixUnknown
	}
	return parts[0] + "." + parts[1] + "." + parts[2] + ".0/24"
}

// NewVisitorID mints a fresh opaque visitor identifier for the vid cookie.
func NewVisitorID() string {
	return uuid.NewString()
}

func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
