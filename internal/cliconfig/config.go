package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/byteservice/internal/domain"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// logLevels are the accepted values for LogLevel. Levels above error would
// hide the failure diagnostic.
var logLevels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// Config holds CLI configuration for byteservice.
type Config struct {
	Byte     uint8
	LogLevel string
}

// DefaultConfig returns a Config with default values.
// The defaults check byte 0.
func DefaultConfig() Config {
	return Config{
		Byte:     0,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: log-level %q: want trace, debug, info, warn or error", domain.ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setByte sets a byte from a pointer if not nil and flag not changed.
// Zero is a valid byte, so absence is signalled by nil.
func (s *configSetter) setByte(flag string, value *int, dst *uint8) error {
	if value == nil || s.changed[flag] {
		return nil
	}
	if *value < 0 || *value > 255 {
		return fmt.Errorf("%w: %s %d out of range [0, 255]", domain.ErrInvalidConfig, flag, *value)
	}
	*dst = uint8(*value)
	return nil
}

// setByteFromString parses a decimal byte and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setByteFromString(flag, value string, dst *uint8) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	v, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidConfig, flag, err)
	}
	*dst = uint8(v)
	return nil
}
