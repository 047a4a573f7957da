package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BYTESERVICE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setByteFromString("byte", os.Getenv("BYTESERVICE_BYTE"), &cfg.Byte); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv("BYTESERVICE_LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
