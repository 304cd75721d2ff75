package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"cryptouri/internal/domain"
	"cryptouri/internal/secretkey"
	"cryptouri/internal/util/memzero"
)

// Derive expands ikm with HKDF-SHA-256 into a key for the algorithm ikm
// names as its derived algorithm.
func Derive(ikm *secretkey.HkdfSha256Key, salt, info []byte) (secretkey.SecretKey, error) {
	alg, ok := ikm.DerivedAlgorithm()
	if !ok {
		return nil, domain.AlgorithmError("HKDF key names no derived algorithm")
	}
	size, ok := secretkey.KeySize(alg)
	if !ok {
		return nil, domain.AlgorithmError("%s is not a secret key algorithm", alg)
	}

	okm := make([]byte, size)
	defer memzero.Zero(okm)

	r := hkdf.New(sha256.New, ikm.ExposeSecret(), salt, info)
	if _, err := io.ReadFull(r, okm); err != nil {
		return nil, err
	}
	return secretkey.NewFor(alg, okm)
}
