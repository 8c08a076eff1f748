package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application. It is immutable after construction; a
// configuration change means building a new Config and swapping it in whole.
type Config struct {
	configDir string

	// Server holds HTTP boundary settings.
	Server *ServerConfig

	// Masking holds the field-masking surface consumed by the engine.
	Masking *MaskingSettings
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
