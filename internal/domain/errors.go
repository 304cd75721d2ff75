package domain

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind (or errors.Is against the Err* values below)
// rather than matching error strings.
type Kind string

const (
	KindSchemeInvalid    Kind = "SchemeInvalid"
	KindAlgorithmInvalid Kind = "AlgorithmInvalid"
	KindLengthInvalid    Kind = "LengthInvalid"
	KindParse            Kind = "ParseError"
	KindChecksumInvalid  Kind = "ChecksumInvalid"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrSchemeInvalid    = &Error{Kind: KindSchemeInvalid, Message: "unknown scheme"}
	ErrAlgorithmInvalid = &Error{Kind: KindAlgorithmInvalid, Message: "unknown or unsupported algorithm"}
	ErrLengthInvalid    = &Error{Kind: KindLengthInvalid, Message: "invalid length"}
	ErrParse            = &Error{Kind: KindParse, Message: "parse error"}
	ErrChecksumInvalid  = &Error{Kind: KindChecksumInvalid, Message: "checksum error"}
)

// Error is the structured error returned by every cryptouri package.
//
// Actual and Expected are only set for KindLengthInvalid.
type Error struct {
	Kind     Kind
	Message  string
	Actual   int
	Expected int
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "cryptouri: " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// SchemeError reports a prefix that matches none of the scheme prefixes.
func SchemeError(prefix string) error {
	return &Error{Kind: KindSchemeInvalid, Message: fmt.Sprintf("unknown CryptoURI prefix: %s", prefix)}
}

// AlgorithmError reports an unknown algorithm or an invalid combination partner.
func AlgorithmError(format string, args ...any) error {
	return &Error{Kind: KindAlgorithmInvalid, Message: fmt.Sprintf(format, args...)}
}

// LengthError reports a payload whose length differs from the algorithm's fixed size.
func LengthError(what string, actual, expected int) error {
	return &Error{
		Kind:     KindLengthInvalid,
		Message:  fmt.Sprintf("bad %s length: %d (expected %d)", what, actual, expected),
		Actual:   actual,
		Expected: expected,
	}
}

// ParseError reports malformed structure.
func ParseError(format string, args ...any) error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// WrapParse is ParseError with an underlying cause.
func WrapParse(cause error, format string, args ...any) error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...) + ": " + cause.Error(), Cause: cause}
}

// ChecksumError reports corruption detected by the checksummed transport.
func ChecksumError(cause error) error {
	msg := "checksum mismatch"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &Error{Kind: KindChecksumInvalid, Message: msg, Cause: cause}
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
