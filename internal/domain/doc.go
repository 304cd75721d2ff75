// Package domain defines the error taxonomy shared by every cryptouri package.
//
// Every validation failure is returned as a *Error carrying a stable Kind:
//
//   - SchemeInvalid     prefix matches none of the four kind schemes
//   - AlgorithmInvalid  algorithm unknown for the kind, or invalid combination partner
//   - LengthInvalid     payload length differs from the algorithm's fixed size
//   - ParseError        malformed structure or combination syntax
//   - ChecksumInvalid   the checksummed transport detected corruption
//
// Nothing is retried and nothing is defaulted. Use errors.Is with the Err*
// sentinels, or IsKind, to branch on the category.
package domain
