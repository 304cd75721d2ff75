// Package publickey holds asymmetric public keys tagged with their algorithm.
package publickey

import (
	"crypto/ed25519"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
)

// PublicKey is a public key. The set of implementations is closed.
type PublicKey interface {
	encoding.Encodable

	Algorithm() algorithm.Algorithm
	Bytes() []byte

	publicKey()
}

// New creates the PublicKey for alg from b.
func New(alg string, b []byte) (PublicKey, error) {
	a, err := algorithm.Parse(alg)
	if err != nil {
		return nil, err
	}
	switch a {
	case algorithm.Ed25519:
		k, err := NewEd25519PublicKey(b)
		if err != nil {
			return nil, err
		}
		return k, nil
	default:
		return nil, domain.AlgorithmError("%s is not a public key algorithm", alg)
	}
}

// Ed25519Size is the size of an Ed25519 public key in bytes.
const Ed25519Size = ed25519.PublicKeySize

// Ed25519PublicKey is an Ed25519 public key (compressed Edwards-y coordinate).
type Ed25519PublicKey [Ed25519Size]byte

// NewEd25519PublicKey copies b into an Ed25519PublicKey.
func NewEd25519PublicKey(b []byte) (Ed25519PublicKey, error) {
	var k Ed25519PublicKey
	if len(b) != Ed25519Size {
		return k, domain.LengthError("Ed25519 public key", len(b), Ed25519Size)
	}
	copy(k[:], b)
	return k, nil
}

func (k Ed25519PublicKey) Algorithm() algorithm.Algorithm { return algorithm.Ed25519 }

// Bytes returns a copy of the key.
func (k Ed25519PublicKey) Bytes() []byte { return append([]byte(nil), k[:]...) }

// Std returns the key as a crypto/ed25519 public key.
func (k Ed25519PublicKey) Std() ed25519.PublicKey { return ed25519.PublicKey(k.Bytes()) }

func (k Ed25519PublicKey) URIString() string {
	return parts.EncodeObject(encoding.URI, encoding.KindPublicKey, algorithm.Ed25519ID, k[:])
}

func (k Ed25519PublicKey) DasherizedString() string {
	return parts.EncodeObject(encoding.Dasherized, encoding.KindPublicKey, algorithm.Ed25519ID, k[:])
}

func (k Ed25519PublicKey) String() string { return k.URIString() }

func (Ed25519PublicKey) publicKey() {}

// AsEd25519 returns k as an Ed25519 public key if it is one.
func AsEd25519(k PublicKey) (Ed25519PublicKey, bool) {
	v, ok := k.(Ed25519PublicKey)
	return v, ok
}
