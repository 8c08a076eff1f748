package config

import "time"

// ServerConfig contains HTTP server configuration for the transform boundary.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// MaxPayloadBytes caps the size of a single inbound payload. The whole
	// document is materialized in memory, so this bounds per-request memory.
	MaxPayloadBytes int64 `yaml:"max_payload_bytes"`

	// ShutdownTimeout is the max time to wait for in-flight requests to
	// drain during graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:      ":8080",
		MaxPayloadBytes: 16 << 20, // 16 MiB
		ShutdownTimeout: 10 * time.Second,
	}
}
