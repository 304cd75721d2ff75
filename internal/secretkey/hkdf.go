package secretkey

import (
	"crypto/sha256"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
)

// HkdfSha256KeySize is the size of HKDF-SHA-256 input key material.
const HkdfSha256KeySize = sha256.Size

// HkdfSha256Key is HKDF-SHA-256 input key material, optionally tagged with
// the algorithm of the key it is meant to derive.
type HkdfSha256Key struct {
	*secret

	// zero when unset
	derived algorithm.Algorithm
}

// NewHkdfSha256Key copies b into a new HKDF-SHA-256 key.
func NewHkdfSha256Key(b []byte) (*HkdfSha256Key, error) {
	s, err := newSecret("HKDF-SHA-256", b, HkdfSha256KeySize)
	if err != nil {
		return nil, err
	}
	return &HkdfSha256Key{secret: s}, nil
}

// NewHkdfSha256KeyFor copies b into a new HKDF-SHA-256 key that derives
// keys for the derived algorithm.
func NewHkdfSha256KeyFor(b []byte, derived algorithm.Algorithm) (*HkdfSha256Key, error) {
	if !derived.Valid() {
		return nil, domain.AlgorithmError("unknown derived algorithm: %s", derived)
	}
	if derived == algorithm.HkdfSha256 {
		return nil, domain.AlgorithmError("%s cannot derive itself", derived)
	}
	k, err := NewHkdfSha256Key(b)
	if err != nil {
		return nil, err
	}
	k.derived = derived
	return k, nil
}

func (k *HkdfSha256Key) Algorithm() algorithm.Algorithm { return algorithm.HkdfSha256 }

// DerivedAlgorithm returns the algorithm this key derives, if any.
func (k *HkdfSha256Key) DerivedAlgorithm() (algorithm.Algorithm, bool) {
	return k.derived, k.derived.Valid()
}

func (k *HkdfSha256Key) Clone() SecretKey {
	return &HkdfSha256Key{secret: k.clone(), derived: k.derived}
}

func (k *HkdfSha256Key) URIString() string {
	return k.encode(encoding.URI, k.algID(encoding.URI))
}

func (k *HkdfSha256Key) DasherizedString() string {
	return k.encode(encoding.Dasherized, k.algID(encoding.Dasherized))
}

func (k *HkdfSha256Key) algID(p *encoding.Profile) string {
	if derived, ok := k.DerivedAlgorithm(); ok {
		return p.Combined(algorithm.HkdfSha256ID, derived.String())
	}
	return algorithm.HkdfSha256ID
}

func (*HkdfSha256Key) secretKey() {}
