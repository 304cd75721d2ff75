package secretkey

import (
	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
)

// SecretKey is secret key material. The set of implementations is closed.
type SecretKey interface {
	encoding.Encodable

	Algorithm() algorithm.Algorithm
	ExposeSecret() []byte
	Zeroize()
	Clone() SecretKey

	secretKey()
}

// KeySize returns the key size in bytes for a secret key algorithm.
func KeySize(a algorithm.Algorithm) (int, bool) {
	switch a {
	case algorithm.Aes128Gcm:
		return Aes128KeySize, true
	case algorithm.Aes256Gcm:
		return Aes256KeySize, true
	case algorithm.ChaCha20Poly1305:
		return ChaCha20Poly1305KeySize, true
	case algorithm.Ed25519:
		return Ed25519KeySize, true
	case algorithm.HkdfSha256:
		return HkdfSha256KeySize, true
	default:
		return 0, false
	}
}

// New creates the SecretKey for alg from b. alg may be an HKDF combination
// joined by p's combine character.
func New(p *encoding.Profile, alg string, b []byte) (SecretKey, error) {
	if p.IsCombined(alg) {
		return newCombined(p, alg, b)
	}
	a, err := algorithm.Parse(alg)
	if err != nil {
		return nil, err
	}
	return NewFor(a, b)
}

// NewFor creates the SecretKey for a from b.
func NewFor(a algorithm.Algorithm, b []byte) (SecretKey, error) {
	var (
		k   SecretKey
		err error
	)
	switch a {
	case algorithm.Aes128Gcm:
		k, err = NewAes128GcmKey(b)
	case algorithm.Aes256Gcm:
		k, err = NewAes256GcmKey(b)
	case algorithm.ChaCha20Poly1305:
		k, err = NewChaCha20Poly1305Key(b)
	case algorithm.Ed25519:
		k, err = NewEd25519SecretKey(b)
	case algorithm.HkdfSha256:
		k, err = NewHkdfSha256Key(b)
	default:
		return nil, domain.AlgorithmError("%s is not a secret key algorithm", a)
	}
	// k holds a typed nil on error
	if err != nil {
		return nil, err
	}
	return k, nil
}

func newCombined(p *encoding.Profile, alg string, b []byte) (SecretKey, error) {
	tokens := p.Split(alg)
	if len(tokens) != 2 {
		return nil, domain.ParseError("malformed algorithm combination: %s", alg)
	}
	first, err := algorithm.Parse(tokens[0])
	if err != nil {
		return nil, err
	}
	if first != algorithm.HkdfSha256 {
		return nil, domain.AlgorithmError("%s cannot be combined with %s", tokens[0], tokens[1])
	}
	derived, err := algorithm.Parse(tokens[1])
	if err != nil {
		return nil, err
	}
	k, err := NewHkdfSha256KeyFor(b, derived)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// AsAes128Gcm returns k as an AES-128-GCM key if it is one.
func AsAes128Gcm(k SecretKey) (*Aes128GcmKey, bool) {
	v, ok := k.(*Aes128GcmKey)
	return v, ok
}

// AsAes256Gcm returns k as an AES-256-GCM key if it is one.
func AsAes256Gcm(k SecretKey) (*Aes256GcmKey, bool) {
	v, ok := k.(*Aes256GcmKey)
	return v, ok
}

// AsChaCha20Poly1305 returns k as a ChaCha20Poly1305 key if it is one.
func AsChaCha20Poly1305(k SecretKey) (*ChaCha20Poly1305Key, bool) {
	v, ok := k.(*ChaCha20Poly1305Key)
	return v, ok
}

// AsEd25519 returns k as an Ed25519 secret key if it is one.
func AsEd25519(k SecretKey) (*Ed25519SecretKey, bool) {
	v, ok := k.(*Ed25519SecretKey)
	return v, ok
}

// AsHkdfSha256 returns k as an HKDF-SHA-256 key if it is one.
func AsHkdfSha256(k SecretKey) (*HkdfSha256Key, bool) {
	v, ok := k.(*HkdfSha256Key)
	return v, ok
}
