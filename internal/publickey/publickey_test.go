package publickey_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/domain"
	"cryptouri/internal/publickey"
)

// Public key from RFC 8032 section 7.1 "TEST 1".
var example = []byte{
	215, 90, 152, 1, 130, 177, 10, 183, 213, 75, 254, 211, 201, 100, 7, 58,
	14, 225, 114, 243, 218, 166, 35, 37, 175, 2, 26, 104, 247, 7, 81, 26,
}

const (
	exampleURI        = "crypto:pub:key:ed25519:6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqf03cvv"
	exampleDasherized = "crypto-pub-key-ed25519-6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqlu986g"
)

func TestEd25519_Serialize(t *testing.T) {
	k, err := publickey.NewEd25519PublicKey(example)
	require.NoError(t, err)
	assert.Equal(t, exampleURI, k.URIString())
	assert.Equal(t, exampleDasherized, k.DasherizedString())
	assert.Equal(t, algorithm.Ed25519, k.Algorithm())
}

func TestEd25519_MatchesSeed(t *testing.T) {
	// RFC 8032 TEST 1 secret key
	seed := []byte{
		157, 97, 177, 157, 239, 253, 90, 96, 186, 132, 74, 244, 146, 236, 44, 196,
		68, 73, 197, 105, 123, 50, 105, 25, 112, 59, 172, 3, 28, 174, 127, 96,
	}
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

	k, err := publickey.NewEd25519PublicKey(pub)
	require.NoError(t, err)
	assert.Equal(t, exampleURI, k.URIString())
	assert.True(t, pub.Equal(k.Std()))
}

func TestNew(t *testing.T) {
	pk, err := publickey.New("ed25519", example)
	require.NoError(t, err)

	k, ok := publickey.AsEd25519(pk)
	require.True(t, ok)
	assert.Equal(t, example, k.Bytes())
}

func TestNew_LengthInvalid(t *testing.T) {
	for _, n := range []int{publickey.Ed25519Size - 1, publickey.Ed25519Size + 1} {
		_, err := publickey.New("ed25519", make([]byte, n))

		var e *domain.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, domain.KindLengthInvalid, e.Kind)
		assert.Equal(t, n, e.Actual)
		assert.Equal(t, publickey.Ed25519Size, e.Expected)
	}
}

func TestNew_AlgorithmInvalid(t *testing.T) {
	for _, alg := range []string{"notreal", "sha256", "aes128gcm", ""} {
		_, err := publickey.New(alg, example)
		assert.ErrorIs(t, err, domain.ErrAlgorithmInvalid, alg)
	}
}
