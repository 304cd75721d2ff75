package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptouri/internal/domain"
	"cryptouri/internal/encoding"
	"cryptouri/internal/parts"
)

var ed25519Pub = []byte{
	215, 90, 152, 1, 130, 177, 10, 183, 213, 75, 254, 211, 201, 100, 7, 58,
	14, 225, 114, 243, 218, 166, 35, 37, 175, 2, 26, 104, 247, 7, 81, 26,
}

const example = "crypto:pub:key:ed25519:6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqf03cvv"

func TestDecode_NoFragment(t *testing.T) {
	p, err := parts.Decode(example, encoding.URI)
	require.NoError(t, err)
	assert.Equal(t, "crypto:pub:key:ed25519", p.Prefix)
	assert.Equal(t, ed25519Pub, p.Data)
	assert.False(t, p.HasFragment)
	assert.Empty(t, p.Fragment)
}

func TestDecode_Fragment(t *testing.T) {
	for _, frag := range []string{"mykey", "", "a#b", "with space", "crypto:hash:x"} {
		p, err := parts.Decode(example+"#"+frag, encoding.URI)
		require.NoError(t, err, frag)
		assert.True(t, p.HasFragment)
		assert.Equal(t, frag, p.Fragment)
		assert.Equal(t, ed25519Pub, p.Data)
	}
}

func TestDecode_DasherizedIgnoresHash(t *testing.T) {
	_, err := parts.Decode("crypto-pub-key-ed25519-6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqlu986g#x", encoding.Dasherized)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestDecode_ChecksumBeforeFragment(t *testing.T) {
	bad := example[:len(example)-2] + "qq#mykey"
	_, err := parts.Decode(bad, encoding.URI)
	assert.ErrorIs(t, err, domain.ErrChecksumInvalid)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, example, parts.Encode("crypto:pub:key:ed25519", ed25519Pub, encoding.URI))
	assert.Equal(t, example, parts.EncodeObject(encoding.URI, encoding.KindPublicKey, "ed25519", ed25519Pub))
	assert.Equal(t,
		"crypto-pub-key-ed25519-6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqlu986g",
		parts.EncodeObject(encoding.Dasherized, encoding.KindPublicKey, "ed25519", ed25519Pub))
}

func TestWipe(t *testing.T) {
	p, err := parts.Decode(example, encoding.URI)
	require.NoError(t, err)
	data := p.Data
	p.Wipe()
	assert.Equal(t, make([]byte, len(ed25519Pub)), data)

	var nilParts *parts.Parts
	nilParts.Wipe()
}
