package fury

import "fmt"

// checkDoublingOverflow reports whether doubling cap would overflow int,
// so a pathological growth request (or a buffer already near math.MaxInt)
// fails with AllocationFailure instead of wrapping to a negative capacity
// and corrupting every bounds check downstream.
func checkDoublingOverflow(cap int) error {
	const maxInt = int(^uint(0) >> 1)
	if cap > maxInt/2 {
		return wrapError(AllocationFailure, "grow buffer", fmt.Errorf("capacity %d cannot be doubled without overflow", cap))
	}
	return nil
}
