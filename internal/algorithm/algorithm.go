// Package algorithm is the closed registry of algorithm identifiers used in
// CryptoURI prefixes.
//
// Identifiers are stable, case-sensitive ASCII. Parse and String are exact
// inverses of each other. There is no dynamic registration: adding an
// algorithm means adding a constant here and a variant in the kind package
// that carries it.
package algorithm

import (
	"strconv"

	"cryptouri/internal/domain"
)

// Algorithm identifies a cryptographic algorithm. The zero value is invalid.
type Algorithm uint8

const (
	// Authenticated encryption with associated data

	// Aes128Gcm is AES-128 in Galois Counter Mode.
	Aes128Gcm Algorithm = iota + 1
	// Aes256Gcm is AES-256 in Galois Counter Mode.
	Aes256Gcm
	// ChaCha20Poly1305 is the ChaCha20Poly1305 AEAD (RFC 8439).
	ChaCha20Poly1305

	// Hashes

	// Sha256 is NIST SHA-256 (FIPS 180-4).
	Sha256

	// Key derivation

	// HkdfSha256 is HKDF (RFC 5869) instantiated with HMAC-SHA-256.
	HkdfSha256

	// Signatures

	// Ed25519 is the Ed25519 signature algorithm (RFC 8032).
	Ed25519
)

// Identifiers as they appear on the wire.
const (
	Aes128GcmID        = "aes128gcm"
	Aes256GcmID        = "aes256gcm"
	ChaCha20Poly1305ID = "chacha20poly1305"
	Sha256ID           = "sha256"
	HkdfSha256ID       = "hkdfsha256"
	Ed25519ID          = "ed25519"
)

var ids = [...]string{
	Aes128Gcm:        Aes128GcmID,
	Aes256Gcm:        Aes256GcmID,
	ChaCha20Poly1305: ChaCha20Poly1305ID,
	Sha256:           Sha256ID,
	HkdfSha256:       HkdfSha256ID,
	Ed25519:          Ed25519ID,
}

// All returns every registered algorithm in registry order.
func All() []Algorithm {
	out := make([]Algorithm, 0, len(ids)-1)
	for a := Aes128Gcm; int(a) < len(ids); a++ {
		out = append(out, a)
	}
	return out
}

// Parse returns the Algorithm for id.
func Parse(id string) (Algorithm, error) {
	for a := Aes128Gcm; int(a) < len(ids); a++ {
		if ids[a] == id {
			return a, nil
		}
	}
	return 0, domain.AlgorithmError("unknown algorithm: %s", id)
}

// Valid reports whether a is a registered algorithm.
func (a Algorithm) Valid() bool {
	return a >= Aes128Gcm && int(a) < len(ids)
}

// String returns the wire identifier of a.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return ids[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, domain.AlgorithmError("unknown algorithm: %s", a)
	}
	return []byte(ids[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
