package exchange

import (
	"fmt"
	"time"
)

// TimeoutError indicates the device did not answer a payload byte within
// the per-byte timeout. ByteIndex is the zero-based index of the payload
// byte that went unanswered.
type TimeoutError struct {
	ByteIndex int
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response from device within %s at byte %d", e.Timeout, e.ByteIndex)
}
