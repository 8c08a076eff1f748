package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// configFileName is the single YAML file loaded from the config directory.
const configFileName = "maskgate.yaml"

// maskgateYAMLConfig represents the complete maskgate.yaml file structure.
type maskgateYAMLConfig struct {
	Server  *ServerConfig    `yaml:"server"`
	Masking *MaskingSettings `yaml:"masking"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read maskgate.yaml from configDir (a missing file selects defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided values over built-in defaults
//  5. Validate and return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen_addr", cfg.Server.ListenAddr,
		"masking_enabled", cfg.Masking.MaskingEnabled(),
		"masking_fields", len(cfg.Masking.FieldList()))

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	yamlCfg, err := loader.loadMaskgateYAML()
	if err != nil {
		return nil, NewLoadError(configFileName, err)
	}

	// Merge user-provided server config into defaults (non-zero values
	// override) to preserve unset defaults.
	serverCfg := DefaultServerConfig()
	if yamlCfg.Server != nil {
		if err := mergo.Merge(serverCfg, yamlCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	maskingCfg := yamlCfg.Masking
	if maskingCfg == nil {
		maskingCfg = &MaskingSettings{}
	}

	return &Config{
		configDir: configDir,
		Server:    serverCfg,
		Masking:   maskingCfg,
	}, nil
}

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Server.ListenAddr == "" {
		return NewValidationError("server", "listen_addr", ErrMissingRequiredField)
	}
	if cfg.Server.MaxPayloadBytes <= 0 {
		return NewValidationError("server", "max_payload_bytes", ErrInvalidValue)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return NewValidationError("server", "shutdown_timeout", ErrInvalidValue)
	}
	return nil
}

type configLoader struct {
	configDir string
}

// loadMaskgateYAML reads and parses maskgate.yaml. A missing file is not an
// error: the service runs with defaults, matching the "absent configuration
// selects the default set" contract.
func (l *configLoader) loadMaskgateYAML() (*maskgateYAMLConfig, error) {
	var config maskgateYAMLConfig

	path := filepath.Join(l.configDir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Configuration file not found, using defaults", "path", path)
			return &config, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax before
	// YAML parsing. ExpandEnv passes the original data through on template
	// errors, letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}
