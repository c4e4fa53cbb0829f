package transport

import (
	"io"
	"time"

	"stegowire/internal/config"
)

// Port is the byte-oriented duplex connection to the attached device.
//
// Read blocks until at least one byte is available or the configured read
// timeout elapses; a timeout is reported as (0, nil), matching the serial
// port semantics. Implementations besides the real serial port are test
// doubles.
type Port interface {
	io.ReadWriteCloser

	// SetReadTimeout bounds how long a single Read blocks waiting for data.
	SetReadTimeout(t time.Duration) error
}

// OpenFunc opens a named port with the given serial configuration. The
// application takes an OpenFunc so tests can substitute a mock device for
// the real serial port.
type OpenFunc func(name string, cfg *config.SerialConfig) (Port, error)
