package transport

import (
	"fmt"
	"time"

	"stegowire/internal/config"

	"go.bug.st/serial"
)

// Open opens the named serial port at the configured baud rate (8N1) and
// arms the per-byte read timeout. After the settle delay it drops whatever
// the device printed while booting, so the exchange starts from a clean
// receive buffer.
func Open(name string, cfg *config.SerialConfig) (Port, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}

	if err := port.SetReadTimeout(cfg.ByteTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", name, err)
	}

	// Boards with auto-reset reboot when the host opens the port; give the
	// firmware time to come up before talking to it.
	if cfg.SettleDelay > 0 {
		time.Sleep(cfg.SettleDelay)
	}

	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to flush input buffer on %s: %w", name, err)
	}

	return port, nil
}

// ListPorts returns the serial port names present on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}
	return ports, nil
}
