package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrInvalidBaudRate    = errors.New("baud rate must be greater than 0")
	ErrInvalidByteTimeout = errors.New("per-byte timeout must be greater than 0")
	ErrInvalidHeaderSize  = errors.New("image header size must be greater than 0")
	ErrInvalidSettleDelay = errors.New("settle delay must not be negative")
)

// Defaults match the device firmware's expectations; override them via the
// config file or STEGOWIRE_* environment variables only when the firmware
// side changes too.
const (
	// DefaultBaudRate is the serial link speed the firmware listens at.
	DefaultBaudRate = 115200

	// DefaultByteTimeout bounds how long we wait for the device to answer
	// a single payload byte before giving up on the whole transfer.
	DefaultByteTimeout = 1 * time.Second

	// DefaultSettleDelay is how long to wait after opening the port.
	// Arduino-style boards reset when the host opens the serial port.
	DefaultSettleDelay = 2 * time.Second

	// DefaultHeaderSize is the size of the BMP header region that is
	// copied through unchanged (BITMAPFILEHEADER + BITMAPV5HEADER).
	DefaultHeaderSize = 138
)

// Config holds all application configuration
type Config struct {
	Serial SerialConfig `json:"serial"`
	Image  ImageConfig  `json:"image"`
}

// SerialConfig holds serial transport configuration
type SerialConfig struct {
	BaudRate    int           `json:"baud_rate"`
	ByteTimeout time.Duration `json:"byte_timeout"`
	SettleDelay time.Duration `json:"settle_delay"`
}

// ImageConfig holds image framing configuration
type ImageConfig struct {
	HeaderSize int `json:"header_size"`
}

// NewDefaultConfig returns a configuration with the stock firmware defaults
func NewDefaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			BaudRate:    DefaultBaudRate,
			ByteTimeout: DefaultByteTimeout,
			SettleDelay: DefaultSettleDelay,
		},
		Image: ImageConfig{
			HeaderSize: DefaultHeaderSize,
		},
	}
}

// Load builds the configuration from viper, falling back to the defaults
// for any key the config file or environment does not set.
func Load() *Config {
	viper.SetDefault("serial.baud_rate", DefaultBaudRate)
	viper.SetDefault("serial.byte_timeout", DefaultByteTimeout)
	viper.SetDefault("serial.settle_delay", DefaultSettleDelay)
	viper.SetDefault("image.header_size", DefaultHeaderSize)

	return &Config{
		Serial: SerialConfig{
			BaudRate:    viper.GetInt("serial.baud_rate"),
			ByteTimeout: viper.GetDuration("serial.byte_timeout"),
			SettleDelay: viper.GetDuration("serial.settle_delay"),
		},
		Image: ImageConfig{
			HeaderSize: viper.GetInt("image.header_size"),
		},
	}
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.Serial.BaudRate <= 0 {
		return ErrInvalidBaudRate
	}
	if c.Serial.ByteTimeout <= 0 {
		return ErrInvalidByteTimeout
	}
	if c.Serial.SettleDelay < 0 {
		return ErrInvalidSettleDelay
	}
	if c.Image.HeaderSize <= 0 {
		return ErrInvalidHeaderSize
	}
	return nil
}
