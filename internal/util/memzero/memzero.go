package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(b)
}

// ZeroOnCleanup zeroes buf once owner becomes unreachable.
//
// buf must not reference owner, otherwise owner is never collected.
func ZeroOnCleanup[T any](owner *T, buf []byte) runtime.Cleanup {
	return runtime.AddCleanup(owner, Zero, buf)
}
