package secretkey

import (
	"crypto/ed25519"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/encoding"
)

// Ed25519KeySize is the size of an Ed25519 secret key (the RFC 8032 seed).
const Ed25519KeySize = ed25519.SeedSize

// Ed25519SecretKey is an Ed25519 secret key.
type Ed25519SecretKey struct{ *secret }

// NewEd25519SecretKey copies b into a new Ed25519 secret key.
func NewEd25519SecretKey(b []byte) (*Ed25519SecretKey, error) {
	s, err := newSecret("Ed25519", b, Ed25519KeySize)
	if err != nil {
		return nil, err
	}
	return &Ed25519SecretKey{s}, nil
}

func (k *Ed25519SecretKey) Algorithm() algorithm.Algorithm { return algorithm.Ed25519 }

func (k *Ed25519SecretKey) Clone() SecretKey { return &Ed25519SecretKey{k.clone()} }

func (k *Ed25519SecretKey) URIString() string {
	return k.encode(encoding.URI, algorithm.Ed25519ID)
}

func (k *Ed25519SecretKey) DasherizedString() string {
	return k.encode(encoding.Dasherized, algorithm.Ed25519ID)
}

func (*Ed25519SecretKey) secretKey() {}
