// Package signature holds digital signatures tagged with their algorithm.
//
// Signatures are not secret, but in some protocols they leak information
// about signing nonces, so they can be wiped with Zeroize once unused.
package signature

import (
	"crypto/ed25519"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
	"cryptouri/internal/util/memzero"
)

// Signature is a digital signature. The set of implementations is closed.
type Signature interface {
	encoding.Encodable

	Algorithm() algorithm.Algorithm
	Bytes() []byte
	Zeroize()

	signature()
}

// New creates the Signature for alg from b.
func New(alg string, b []byte) (Signature, error) {
	a, err := algorithm.Parse(alg)
	if err != nil {
		return nil, err
	}
	switch a {
	case algorithm.Ed25519:
		s, err := NewEd25519Signature(b)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, domain.AlgorithmError("%s is not a signature algorithm", alg)
	}
}

// Ed25519Size is the size of an Ed25519 signature in bytes.
const Ed25519Size = ed25519.SignatureSize

// Ed25519Signature is an Ed25519 signature (R || S).
type Ed25519Signature struct {
	sig [Ed25519Size]byte
}

// NewEd25519Signature copies b into an Ed25519Signature.
func NewEd25519Signature(b []byte) (*Ed25519Signature, error) {
	if len(b) != Ed25519Size {
		return nil, domain.LengthError("Ed25519 signature", len(b), Ed25519Size)
	}
	s := new(Ed25519Signature)
	copy(s.sig[:], b)
	return s, nil
}

func (s *Ed25519Signature) Algorithm() algorithm.Algorithm { return algorithm.Ed25519 }

// Bytes returns a copy of the signature.
func (s *Ed25519Signature) Bytes() []byte { return append([]byte(nil), s.sig[:]...) }

// Zeroize overwrites the signature with zeros.
func (s *Ed25519Signature) Zeroize() { memzero.Zero(s.sig[:]) }

func (s *Ed25519Signature) URIString() string {
	return parts.EncodeObject(encoding.URI, encoding.KindSignature, algorithm.Ed25519ID, s.sig[:])
}

func (s *Ed25519Signature) DasherizedString() string {
	return parts.EncodeObject(encoding.Dasherized, encoding.KindSignature, algorithm.Ed25519ID, s.sig[:])
}

func (s *Ed25519Signature) String() string { return s.URIString() }

func (*Ed25519Signature) signature() {}

// AsEd25519 returns s as an Ed25519 signature if it is one.
func AsEd25519(s Signature) (*Ed25519Signature, bool) {
	v, ok := s.(*Ed25519Signature)
	return v, ok
}
