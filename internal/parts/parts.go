// Package parts splits a CryptoURI string into prefix, payload and fragment,
// and assembles the checksummed segment on encode.
package parts

import (
	"strings"

	"cryptouri/internal/bech32"
	"cryptouri/internal/encoding"
	"cryptouri/internal/util/memzero"
)

// Parts is the transient result of decoding a CryptoURI.
//
// Data may be secret key material; call Wipe as soon as the typed object has
// been built from it.
type Parts struct {
	// Prefix is the scheme plus the algorithm identifier.
	Prefix string

	// Data is the raw checksummed payload.
	Data []byte

	// Fragment is everything after the fragment delimiter. It is not
	// covered by the checksum.
	Fragment    string
	HasFragment bool
}

// Decode splits input according to p.
func Decode(input string, p *encoding.Profile) (*Parts, error) {
	var out Parts
	checked := input

	// The fragment is split off at its first occurrence, before the
	// checksum is verified, so it can be edited freely (e.g. a key label).
	if p.HasFragment() {
		if i := strings.IndexByte(input, p.FragmentDelimiter); i >= 0 {
			checked = input[:i]
			out.Fragment = input[i+1:]
			out.HasFragment = true
		}
	}

	prefix, data, err := bech32.Decode(checked, p.Delimiter)
	if err != nil {
		return nil, err
	}
	out.Prefix = prefix
	out.Data = data
	return &out, nil
}

// Wipe zeroes the payload.
func (p *Parts) Wipe() {
	if p == nil {
		return
	}
	memzero.Zero(p.Data)
}

// Encode produces the checksummed segment for prefix and data. Fragments are
// appended by the caller.
func Encode(prefix string, data []byte, p *encoding.Profile) string {
	return bech32.Encode(prefix, p.Delimiter, data)
}

// EncodeObject encodes payload under the scheme for kind followed by the
// algorithm identifier alg.
func EncodeObject(p *encoding.Profile, kind encoding.Kind, alg string, payload []byte) string {
	return Encode(p.Scheme(kind)+alg, payload, p)
}
