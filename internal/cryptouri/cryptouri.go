// Package cryptouri parses and produces CryptoURIs: checksummed strings
// that name a cryptographic object, its algorithm and its raw bytes.
//
//	crypto:pub:key:ed25519:6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqf03cvv
//	crypto-pub-key-ed25519-6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqlu986g
//
// A URI holds exactly one digest, public key, secret key or signature. URI
// style strings may carry a fragment after '#' which is not checksummed.
package cryptouri

import (
	"strings"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/digest"
	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
	"cryptouri/internal/publickey"
	"cryptouri/internal/secretkey"
	"cryptouri/internal/signature"
)

// URI is a decoded CryptoURI.
type URI struct {
	kind encoding.Kind

	digest    digest.Digest
	publicKey publickey.PublicKey
	secretKey secretkey.SecretKey
	signature signature.Signature

	fragment    string
	hasFragment bool
}

// ParseURI parses a URI style CryptoURI.
func ParseURI(s string) (*URI, error) { return Parse(s, encoding.URI) }

// ParseDasherized parses a dasherized CryptoURI.
func ParseDasherized(s string) (*URI, error) { return Parse(s, encoding.Dasherized) }

// ParseAny picks the profile from the leading "crypto:" or "crypto-" token.
func ParseAny(s string) (*URI, error) {
	p, err := DetectProfile(s)
	if err != nil {
		return nil, err
	}
	return Parse(s, p)
}

// DetectProfile returns the profile whose leading token s starts with.
func DetectProfile(s string) (*encoding.Profile, error) {
	const token = "crypto"
	if len(s) > len(token) && strings.EqualFold(s[:len(token)], token) {
		switch s[len(token)] {
		case encoding.URI.Delimiter:
			return encoding.URI, nil
		case encoding.Dasherized.Delimiter:
			return encoding.Dasherized, nil
		}
	}
	head := s
	if i := strings.IndexAny(s, ":-"); i >= 0 {
		head = s[:i]
	}
	return nil, domain.SchemeError(head)
}

// Parse decodes s using profile p.
func Parse(s string, p *encoding.Profile) (*URI, error) {
	pp, err := parts.Decode(s, p)
	if err != nil {
		return nil, err
	}
	defer pp.Wipe()

	kind, alg, ok := p.Match(pp.Prefix)
	if !ok {
		return nil, domain.SchemeError(pp.Prefix)
	}

	u := &URI{kind: kind, fragment: pp.Fragment, hasFragment: pp.HasFragment}
	switch kind {
	case encoding.KindDigest:
		u.digest, err = digest.New(alg, pp.Data)
	case encoding.KindPublicKey:
		u.publicKey, err = publickey.New(alg, pp.Data)
	case encoding.KindSecretKey:
		u.secretKey, err = secretkey.New(p, alg, pp.Data)
	case encoding.KindSignature:
		u.signature, err = signature.New(alg, pp.Data)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FromDigest wraps d.
func FromDigest(d digest.Digest) *URI {
	return &URI{kind: encoding.KindDigest, digest: d}
}

// FromPublicKey wraps k.
func FromPublicKey(k publickey.PublicKey) *URI {
	return &URI{kind: encoding.KindPublicKey, publicKey: k}
}

// FromSecretKey wraps k. The URI shares k's buffer.
func FromSecretKey(k secretkey.SecretKey) *URI {
	return &URI{kind: encoding.KindSecretKey, secretKey: k}
}

// FromSignature wraps sig.
func FromSignature(sig signature.Signature) *URI {
	return &URI{kind: encoding.KindSignature, signature: sig}
}

// WithFragment returns a copy of u carrying fragment. The object itself is
// shared.
func (u *URI) WithFragment(fragment string) *URI {
	c := *u
	c.fragment = fragment
	c.hasFragment = true
	return &c
}

func (u *URI) Kind() encoding.Kind { return u.kind }

func (u *URI) Digest() (digest.Digest, bool) { return u.digest, u.digest != nil }

func (u *URI) PublicKey() (publickey.PublicKey, bool) { return u.publicKey, u.publicKey != nil }

func (u *URI) SecretKey() (secretkey.SecretKey, bool) { return u.secretKey, u.secretKey != nil }

func (u *URI) Signature() (signature.Signature, bool) { return u.signature, u.signature != nil }

func (u *URI) IsDigest() bool { return u.kind == encoding.KindDigest }

func (u *URI) IsPublicKey() bool { return u.kind == encoding.KindPublicKey }

func (u *URI) IsSecretKey() bool { return u.kind == encoding.KindSecretKey }

func (u *URI) IsSignature() bool { return u.kind == encoding.KindSignature }

// Fragment returns the fragment, which may be present but empty.
func (u *URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Algorithm returns the algorithm of the held object. For a combined HKDF
// key this is HkdfSha256.
func (u *URI) Algorithm() algorithm.Algorithm {
	if o := u.object(); o != nil {
		return o.Algorithm()
	}
	return 0
}

type object interface {
	encoding.Encodable
	Algorithm() algorithm.Algorithm
}

func (u *URI) object() object {
	switch u.kind {
	case encoding.KindDigest:
		return u.digest
	case encoding.KindPublicKey:
		return u.publicKey
	case encoding.KindSecretKey:
		return u.secretKey
	case encoding.KindSignature:
		return u.signature
	default:
		return nil
	}
}

// URIString encodes u in URI style, followed by the fragment if present.
func (u *URI) URIString() string {
	o := u.object()
	if o == nil {
		return ""
	}
	s := o.URIString()
	if u.hasFragment {
		s += string(encoding.URI.FragmentDelimiter) + u.fragment
	}
	return s
}

// DasherizedString encodes u in dasherized style. The fragment is dropped.
func (u *URI) DasherizedString() string {
	o := u.object()
	if o == nil {
		return ""
	}
	return o.DasherizedString()
}

// String returns the URI style encoding, redacted for secret keys.
func (u *URI) String() string {
	if u.kind == encoding.KindSecretKey {
		return "<CryptoURI " + u.Algorithm().String() + " secret key>"
	}
	return u.URIString()
}

// MarshalText encodes u in URI style.
func (u *URI) MarshalText() ([]byte, error) {
	if u.object() == nil {
		return nil, domain.ParseError("empty CryptoURI")
	}
	return []byte(u.URIString()), nil
}

// UnmarshalText accepts either style.
func (u *URI) UnmarshalText(text []byte) error {
	v, err := ParseAny(string(text))
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

// Zeroize wipes a held secret key or signature.
func (u *URI) Zeroize() {
	if u.secretKey != nil {
		u.secretKey.Zeroize()
	}
	if u.signature != nil {
		u.signature.Zeroize()
	}
}
