package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"cryptouri/internal/digest"
	"cryptouri/internal/publickey"
)

// Fingerprint returns the SHA-256 digest of a public key's bytes.
func Fingerprint(pub publickey.PublicKey) digest.Sha256Digest {
	return digest.Sha256Digest(sha256.Sum256(pub.Bytes()))
}

// ShortFingerprint returns a short hex fingerprint of a public key.
//
// It truncates the SHA-256 fingerprint to 10 bytes (20 hex chars).
func ShortFingerprint(pub publickey.PublicKey) string {
	sum := Fingerprint(pub)
	return hex.EncodeToString(sum[:10])
}
