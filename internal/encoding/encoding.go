// Package encoding holds the two CryptoURI presentation profiles.
//
// The profiles are the single source of truth for scheme prefixes and
// delimiters on both the encode and the decode path.
package encoding

import "strings"

// Kind is the category of object a CryptoURI denotes.
type Kind uint8

const (
	KindDigest Kind = iota + 1
	KindPublicKey
	KindSecretKey
	KindSignature
)

func (k Kind) String() string {
	switch k {
	case KindDigest:
		return "digest"
	case KindPublicKey:
		return "public-key"
	case KindSecretKey:
		return "secret-key"
	case KindSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Kinds lists every kind in scheme matching order.
var Kinds = [...]Kind{KindDigest, KindPublicKey, KindSecretKey, KindSignature}

// Profile describes one presentation style.
type Profile struct {
	Name string

	DigestScheme    string
	PublicKeyScheme string
	SecretKeyScheme string
	SignatureScheme string

	// Delimiter separates the human readable part from the checksummed payload.
	Delimiter byte

	// Combine joins two algorithm identifiers in a combination prefix.
	Combine byte

	// FragmentDelimiter marks an un-checksummed suffix; 0 when unsupported.
	FragmentDelimiter byte
}

// URI is the generic URI syntax profile.
var URI = &Profile{
	Name:              "uri",
	DigestScheme:      "crypto:hash:",
	PublicKeyScheme:   "crypto:pub:key:",
	SecretKeyScheme:   "crypto:sec:key:",
	SignatureScheme:   "crypto:sig:",
	Delimiter:         ':',
	Combine:           '+',
	FragmentDelimiter: '#',
}

// Dasherized is the URI-embeddable profile. It has no fragment support.
var Dasherized = &Profile{
	Name:            "dasherized",
	DigestScheme:    "crypto-hash-",
	PublicKeyScheme: "crypto-pub-key-",
	SecretKeyScheme: "crypto-sec-key-",
	SignatureScheme: "crypto-sig-",
	Delimiter:       '-',
	Combine:         '_',
}

// HasFragment reports whether the profile supports fragments.
func (p *Profile) HasFragment() bool {
	return p.FragmentDelimiter != 0
}

// Scheme returns the scheme prefix for k, or "" for an unknown kind.
func (p *Profile) Scheme(k Kind) string {
	switch k {
	case KindDigest:
		return p.DigestScheme
	case KindPublicKey:
		return p.PublicKeyScheme
	case KindSecretKey:
		return p.SecretKeyScheme
	case KindSignature:
		return p.SignatureScheme
	default:
		return ""
	}
}

// Match finds the scheme prefix starts with and returns the remaining
// algorithm identifier.
func (p *Profile) Match(prefix string) (kind Kind, alg string, ok bool) {
	for _, k := range Kinds {
		if scheme := p.Scheme(k); strings.HasPrefix(prefix, scheme) {
			return k, prefix[len(scheme):], true
		}
	}
	return 0, "", false
}

// Combined joins two algorithm identifiers with the profile's combine character.
func (p *Profile) Combined(first, second string) string {
	return first + string(p.Combine) + second
}

// IsCombined reports whether alg contains the combine character.
func (p *Profile) IsCombined(alg string) bool {
	return strings.IndexByte(alg, p.Combine) >= 0
}

// Split splits a combination identifier on the combine character.
func (p *Profile) Split(alg string) []string {
	return strings.Split(alg, string(p.Combine))
}

// Encodable is implemented by every object that has a CryptoURI form.
type Encodable interface {
	// URIString encodes the object in URI generic syntax.
	URIString() string

	// DasherizedString encodes the object in the URI-embeddable form.
	DasherizedString() string
}
