// Package bech32 adapts the Bech32 checksummed transport to a configurable
// delimiter character.
//
// Checksum computation, the charset and bit-group conversion are delegated to
// github.com/btcsuite/btcd/btcutil/bech32, which always uses '1' to separate
// the human readable part from the data part. The delimiter is not covered by
// the checksum, so swapping it is lossless.
//
// Unlike BIP-173 addresses, encoded strings are not limited to 90 characters:
// a 64-byte signature with its prefix is well past that.
package bech32

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"cryptouri/internal/domain"
	"cryptouri/internal/util/memzero"
)

const separator = '1'

// Encode encodes data under hrp, separated by delim.
func Encode(hrp string, delim byte, data []byte) string {
	groups, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		// unreachable for an 8-to-5 conversion
		panic("bech32: " + err.Error())
	}
	defer memzero.Zero(groups)

	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		panic("bech32: " + err.Error())
	}
	return s[:len(hrp)] + string(delim) + s[len(hrp)+1:]
}

// Decode splits s at the last delim, verifies the checksum and returns the
// human readable part and the decoded payload.
func Decode(s string, delim byte) (hrp string, data []byte, err error) {
	i := strings.LastIndexByte(s, delim)
	if i < 1 {
		return "", nil, domain.ParseError("missing %q delimiter", delim)
	}
	payload := s[i+1:]
	if j := strings.IndexByte(payload, separator); j >= 0 {
		return "", nil, domain.ParseError("invalid character %q in payload", payload[j])
	}

	hrp, groups, err := bech32.DecodeNoLimit(s[:i] + string(separator) + payload)
	if err != nil {
		return "", nil, mapError(err)
	}
	defer memzero.Zero(groups)

	data, err = bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, domain.WrapParse(err, "malformed payload")
	}
	return hrp, data, nil
}

func mapError(err error) error {
	var checksum bech32.ErrInvalidChecksum
	if errors.As(err, &checksum) {
		return domain.ChecksumError(err)
	}
	return domain.WrapParse(err, "malformed bech32 string")
}
