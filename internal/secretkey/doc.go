// Package secretkey holds symmetric and asymmetric secret keys tagged with
// their algorithm.
//
// Every key owns exactly one heap buffer holding its material. The buffer is
// allocated only after the input length has been validated, so a failed
// constructor never holds key bytes. It is overwritten with zeros by Zeroize,
// and automatically once the key becomes unreachable. Copying a key value
// shares the buffer; use Clone for an independent copy with its own cleanup.
//
// ExposeSecret returns the backing buffer itself, not a copy. Callers must not
// retain or modify it.
//
// HKDF-SHA-256 keys may name a second algorithm they are meant to derive. Such
// keys encode both identifiers joined by the profile's combine character:
//
//	crypto:sec:key:hkdfsha256+aes256gcm:<payload>
//	crypto-sec-key-hkdfsha256_aes256gcm-<payload>
package secretkey
