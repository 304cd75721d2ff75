// Package commands defines the cryptouri CLI.
//
// Commands
//
//   - decode       Describe a CryptoURI (kind, algorithm, fragment, payload)
//   - encode       Build a CryptoURI from hex bytes
//   - convert      Re-encode a CryptoURI in the other style
//   - fingerprint  Print the SHA-256 digest CryptoURI of a public key
//   - derive       Expand a combined HKDF key into the key it names
//
// Commands that take a CryptoURI read it from the first argument, or from
// the first line of standard input when the argument is absent or "-".
//
// # Implementation
//
// The root command binds its persistent flags into viper and resolves the
// app configuration before any subcommand runs, so handlers share one
// logger, output printer and format selection.
package commands
