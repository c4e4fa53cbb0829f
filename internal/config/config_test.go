package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 115200, cfg.Serial.BaudRate)
	require.Equal(t, 1*time.Second, cfg.Serial.ByteTimeout)
	require.Equal(t, 2*time.Second, cfg.Serial.SettleDelay)
	require.Equal(t, 138, cfg.Image.HeaderSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero baud rate", func(c *Config) { c.Serial.BaudRate = 0 }, ErrInvalidBaudRate},
		{"negative byte timeout", func(c *Config) { c.Serial.ByteTimeout = -time.Second }, ErrInvalidByteTimeout},
		{"negative settle delay", func(c *Config) { c.Serial.SettleDelay = -time.Second }, ErrInvalidSettleDelay},
		{"zero header size", func(c *Config) { c.Image.HeaderSize = 0 }, ErrInvalidHeaderSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	require.Equal(t, NewDefaultConfig(), Load())
}

func TestLoadHonorsOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("serial.baud_rate", 9600)
	viper.Set("serial.byte_timeout", "500ms")

	cfg := Load()
	require.Equal(t, 9600, cfg.Serial.BaudRate)
	require.Equal(t, 500*time.Millisecond, cfg.Serial.ByteTimeout)
	require.Equal(t, DefaultHeaderSize, cfg.Image.HeaderSize)
}
