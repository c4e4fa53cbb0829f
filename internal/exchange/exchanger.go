package exchange

import (
	"context"
	"fmt"

	"stegowire/internal/config"
	"stegowire/internal/transport"
)

// ProgressUpdate reports one exchanged byte to the UI.
type ProgressUpdate struct {
	ByteIndex int    // zero-based index of the byte just exchanged
	Total     int    // total payload bytes in this session
	NewBytes  uint64 // bytes exchanged in this update
}

// Exchanger runs the synchronous byte-for-byte exchange with the device:
// one byte out, block until the reply byte arrives or the per-byte timeout
// elapses, then the next byte. There is never more than one byte in flight,
// so response bytes keep the same index order as the payload.
type Exchanger struct {
	cfg *config.Config
}

// NewExchanger creates a new exchanger
func NewExchanger(cfg *config.Config) *Exchanger {
	return &Exchanger{cfg: cfg}
}

// Run exchanges every payload byte with the device on port and returns the
// response buffer, which on success has exactly len(payload) bytes. Any
// timeout, transport error, or context cancellation aborts the whole
// session; there are no retries and no partial result.
//
// If progressCh is non-nil, Run sends one update per exchanged byte and
// closes the channel when the session ends, whatever the outcome.
func (e *Exchanger) Run(ctx context.Context, port transport.Port, payload []byte, progressCh chan<- ProgressUpdate) ([]byte, error) {
	if progressCh != nil {
		defer close(progressCh)
	}

	if err := port.SetReadTimeout(e.cfg.Serial.ByteTimeout); err != nil {
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	response := make([]byte, 0, len(payload))
	buf := make([]byte, 1)

	for i, b := range payload {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("transfer cancelled at byte %d: %w", i, err)
		}

		buf[0] = b
		if _, err := port.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to send byte %d: %w", i, err)
		}

		// Blocking single-byte read; the port's read timeout is the
		// per-byte deadline. Zero bytes back means the deadline passed.
		n, err := port.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read response for byte %d: %w", i, err)
		}
		if n == 0 {
			return nil, &TimeoutError{ByteIndex: i, Timeout: e.cfg.Serial.ByteTimeout}
		}

		response = append(response, buf[0])

		if progressCh != nil {
			progressCh <- ProgressUpdate{ByteIndex: i, Total: len(payload), NewBytes: 1}
		}
	}

	return response, nil
}
