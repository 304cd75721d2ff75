// Package digest holds hash values tagged with their algorithm.
package digest

import (
	"crypto/sha256"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
)

// Digest is a hash value. The set of implementations is closed.
type Digest interface {
	encoding.Encodable

	Algorithm() algorithm.Algorithm
	Bytes() []byte

	digest()
}

// New creates the Digest for alg from b.
func New(alg string, b []byte) (Digest, error) {
	a, err := algorithm.Parse(alg)
	if err != nil {
		return nil, err
	}
	switch a {
	case algorithm.Sha256:
		d, err := NewSha256Digest(b)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, domain.AlgorithmError("%s is not a digest algorithm", alg)
	}
}

// Sha256Size is the size of a SHA-256 digest in bytes.
const Sha256Size = sha256.Size

// Sha256Digest is a NIST SHA-256 digest.
type Sha256Digest [Sha256Size]byte

// NewSha256Digest copies b into a Sha256Digest.
func NewSha256Digest(b []byte) (Sha256Digest, error) {
	var d Sha256Digest
	if len(b) != Sha256Size {
		return d, domain.LengthError("SHA-256 digest", len(b), Sha256Size)
	}
	copy(d[:], b)
	return d, nil
}

func (d Sha256Digest) Algorithm() algorithm.Algorithm { return algorithm.Sha256 }

// Bytes returns a copy of the digest.
func (d Sha256Digest) Bytes() []byte { return append([]byte(nil), d[:]...) }

func (d Sha256Digest) URIString() string {
	return parts.EncodeObject(encoding.URI, encoding.KindDigest, algorithm.Sha256ID, d[:])
}

func (d Sha256Digest) DasherizedString() string {
	return parts.EncodeObject(encoding.Dasherized, encoding.KindDigest, algorithm.Sha256ID, d[:])
}

func (d Sha256Digest) String() string { return d.URIString() }

func (Sha256Digest) digest() {}

// AsSha256 returns d as a SHA-256 digest if it is one.
func AsSha256(d Digest) (Sha256Digest, bool) {
	v, ok := d.(Sha256Digest)
	return v, ok
}
