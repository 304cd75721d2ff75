// Package crypto holds the few computations the cryptouri command performs
// over decoded objects.
//
// Contents
//
//   - Public-key fingerprints as SHA-256 digests, and a short hex form for
//     display (Fingerprint, ShortFingerprint)
//   - HKDF-SHA-256 derivation from a combined key (Derive)
//
// # Notes
//
// The codec packages never compute over key material; everything here is
// used only by the command line. Intermediate buffers holding derived key
// bytes are wiped once the typed key has copied them.
package crypto
