package secretkey

import (
	"golang.org/x/crypto/chacha20poly1305"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/encoding"
)

// ChaCha20Poly1305KeySize is the size of a ChaCha20Poly1305 key in bytes.
const ChaCha20Poly1305KeySize = chacha20poly1305.KeySize

// ChaCha20Poly1305Key is a ChaCha20Poly1305 (RFC 8439) key.
type ChaCha20Poly1305Key struct{ *secret }

// NewChaCha20Poly1305Key copies b into a new ChaCha20Poly1305 key.
func NewChaCha20Poly1305Key(b []byte) (*ChaCha20Poly1305Key, error) {
	s, err := newSecret("ChaCha20Poly1305", b, ChaCha20Poly1305KeySize)
	if err != nil {
		return nil, err
	}
	return &ChaCha20Poly1305Key{s}, nil
}

func (k *ChaCha20Poly1305Key) Algorithm() algorithm.Algorithm { return algorithm.ChaCha20Poly1305 }

func (k *ChaCha20Poly1305Key) Clone() SecretKey { return &ChaCha20Poly1305Key{k.clone()} }

func (k *ChaCha20Poly1305Key) URIString() string {
	return k.encode(encoding.URI, algorithm.ChaCha20Poly1305ID)
}

func (k *ChaCha20Poly1305Key) DasherizedString() string {
	return k.encode(encoding.Dasherized, algorithm.ChaCha20Poly1305ID)
}

func (*ChaCha20Poly1305Key) secretKey() {}
