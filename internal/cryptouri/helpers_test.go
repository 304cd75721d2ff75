package cryptouri_test

import (
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
)

// parts32 encodes an arbitrary prefix with a valid checksum.
func parts32(p *encoding.Profile, prefix string, data []byte) string {
	return parts.Encode(prefix, data, p)
}
