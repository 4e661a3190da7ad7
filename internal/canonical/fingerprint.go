package canonical

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint domains. The version suffix leaves room for changing the
// canonical form without colliding with old fingerprints.
const (
	DomainExecution = "afm/execution/v1"
	DomainMessage   = "afm/message/v1"
)

// Fingerprint returns the hex SHA-256 of domain, a 0x00 separator and the
// canonical form of v.
func Fingerprint(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return hashWithDomain(domain, data), nil
}

// FingerprintJSON is Fingerprint for an already encoded document.
func FingerprintJSON(domain string, data []byte) (string, error) {
	c, err := Transform(data)
	if err != nil {
		return "", err
	}
	return hashWithDomain(domain, c), nil
}

func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
