package secretkey

import (
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
	"cryptouri/internal/util/memzero"
)

// secret is the buffer shared by every key type.
type secret struct {
	name string
	buf  []byte
}

func newSecret(name string, b []byte, size int) (*secret, error) {
	if len(b) != size {
		return nil, domain.LengthError(name+" key", len(b), size)
	}
	s := &secret{name: name, buf: make([]byte, size)}
	copy(s.buf, b)
	memzero.ZeroOnCleanup(s, s.buf)
	return s, nil
}

func (s *secret) clone() *secret {
	c, _ := newSecret(s.name, s.buf, len(s.buf))
	return c
}

// ExposeSecret borrows the key material.
func (s *secret) ExposeSecret() []byte { return s.buf }

// Zeroize overwrites the key material with zeros.
func (s *secret) Zeroize() { memzero.Zero(s.buf) }

func (s *secret) String() string { return "<" + s.name + " secret key>" }

func (s *secret) GoString() string { return s.String() }

func (s *secret) encode(p *encoding.Profile, alg string) string {
	return parts.EncodeObject(p, encoding.KindSecretKey, alg, s.buf)
}
