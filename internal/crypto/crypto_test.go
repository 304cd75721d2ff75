package crypto_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptouri/internal/algorithm"
	"cryptouri/internal/crypto"
	"cryptouri/internal/domain"
	"cryptouri/internal/publickey"
	"cryptouri/internal/secretkey"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFingerprint(t *testing.T) {
	raw := mustHex(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	pub, err := publickey.NewEd25519PublicKey(raw)
	require.NoError(t, err)

	want := sha256.Sum256(raw)
	fp := crypto.Fingerprint(pub)
	assert.Equal(t, want[:], fp.Bytes())
	assert.Equal(t, hex.EncodeToString(want[:10]), crypto.ShortFingerprint(pub))
	assert.Len(t, crypto.ShortFingerprint(pub), 20)
}

// RFC 5869 test case 1 salt and info, with 32 bytes of input key material.
func TestDerive(t *testing.T) {
	ikm := mustHex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")

	k, err := secretkey.NewHkdfSha256KeyFor(ikm, algorithm.Aes256Gcm)
	require.NoError(t, err)

	out, err := crypto.Derive(k, salt, info)
	require.NoError(t, err)
	assert.Equal(t, algorithm.Aes256Gcm, out.Algorithm())
	assert.Equal(t, mustHex(t, "d4100799f26a09615a72af3e58fa3841a2ff20d5ace3fb392e562e207fe6b718"), out.ExposeSecret())

	again, err := crypto.Derive(k, salt, info)
	require.NoError(t, err)
	assert.Equal(t, out.ExposeSecret(), again.ExposeSecret())

	other, err := crypto.Derive(k, salt, []byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, out.ExposeSecret(), other.ExposeSecret())
}

func TestDerive_Sizes(t *testing.T) {
	ikm := make([]byte, secretkey.HkdfSha256KeySize)
	for _, alg := range []algorithm.Algorithm{algorithm.Aes128Gcm, algorithm.ChaCha20Poly1305, algorithm.Ed25519} {
		k, err := secretkey.NewHkdfSha256KeyFor(ikm, alg)
		require.NoError(t, err)
		out, err := crypto.Derive(k, nil, nil)
		require.NoError(t, err)
		size, _ := secretkey.KeySize(alg)
		assert.Len(t, out.ExposeSecret(), size, alg.String())
		assert.Equal(t, alg, out.Algorithm())
	}
}

func TestDerive_Rejects(t *testing.T) {
	ikm := make([]byte, secretkey.HkdfSha256KeySize)

	plain, err := secretkey.NewHkdfSha256Key(ikm)
	require.NoError(t, err)
	_, err = crypto.Derive(plain, nil, nil)
	assert.ErrorIs(t, err, domain.ErrAlgorithmInvalid)

	digestTarget, err := secretkey.NewHkdfSha256KeyFor(ikm, algorithm.Sha256)
	require.NoError(t, err)
	_, err = crypto.Derive(digestTarget, nil, nil)
	assert.ErrorIs(t, err, domain.ErrAlgorithmInvalid)
}
