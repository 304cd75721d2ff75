package secretkey

import (
	"cryptouri/internal/algorithm"
	"cryptouri/internal/encoding"
)

const (
	// Aes128KeySize is the size of an AES-128 key in bytes.
	Aes128KeySize = 16

	// Aes256KeySize is the size of an AES-256 key in bytes.
	Aes256KeySize = 32
)

// Aes128GcmKey is an AES-128 key for Galois/Counter Mode.
type Aes128GcmKey struct{ *secret }

// NewAes128GcmKey copies b into a new AES-128-GCM key.
func NewAes128GcmKey(b []byte) (*Aes128GcmKey, error) {
	s, err := newSecret("AES-128-GCM", b, Aes128KeySize)
	if err != nil {
		return nil, err
	}
	return &Aes128GcmKey{s}, nil
}

func (k *Aes128GcmKey) Algorithm() algorithm.Algorithm { return algorithm.Aes128Gcm }

func (k *Aes128GcmKey) Clone() SecretKey { return &Aes128GcmKey{k.clone()} }

func (k *Aes128GcmKey) URIString() string {
	return k.encode(encoding.URI, algorithm.Aes128GcmID)
}

func (k *Aes128GcmKey) DasherizedString() string {
	return k.encode(encoding.Dasherized, algorithm.Aes128GcmID)
}

func (*Aes128GcmKey) secretKey() {}

// Aes256GcmKey is an AES-256 key for Galois/Counter Mode.
type Aes256GcmKey struct{ *secret }

// NewAes256GcmKey copies b into a new AES-256-GCM key.
func NewAes256GcmKey(b []byte) (*Aes256GcmKey, error) {
	s, err := newSecret("AES-256-GCM", b, Aes256KeySize)
	if err != nil {
		return nil, err
	}
	return &Aes256GcmKey{s}, nil
}

func (k *Aes256GcmKey) Algorithm() algorithm.Algorithm { return algorithm.Aes256Gcm }

func (k *Aes256GcmKey) Clone() SecretKey { return &Aes256GcmKey{k.clone()} }

func (k *Aes256GcmKey) URIString() string {
	return k.encode(encoding.URI, algorithm.Aes256GcmID)
}

func (k *Aes256GcmKey) DasherizedString() string {
	return k.encode(encoding.Dasherized, algorithm.Aes256GcmID)
}

func (*Aes256GcmKey) secretKey() {}
