package fury

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID returns the calling goroutine's runtime ID, parsed out of
// its own stack trace header ("goroutine 123 [running]: ..."). It exists
// solely so ClassChecker can tell a genuinely concurrent mutation (a
// different goroutine, which should block and wait its turn) apart from
// a listener callback recursively mutating the same checker it's being
// notified from (same goroutine, which must fail fast instead of
// deadlocking on a non-reentrant mutex). It is not used on any hot path.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
