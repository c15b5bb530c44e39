// Package config assembles the full service configuration: the HTTP server
// settings wrapped for file/env loading and export.
package config

import (
	"fmt"

	metadatacfg "github.com/p0lemic/SIFO/pkg/metadata/config"
	"github.com/p0lemic/SIFO/pkg/server"
	"github.com/p0lemic/SIFO/pkg/server/config/loaders"
)

// Config contains configuration settings for the metadata API and its dependencies.
type Config struct {
	Server server.Config `mapstructure:"server"`
}

// NewDefault returns a Config with default HTTP server settings.
func NewDefault() Config {
	return Config{
		Server: server.DefaultConfig,
	}
}

// Export writes the configuration to the file at the specified path.
// It formats the file content based on the file extension:
// JSON for ".json" files, YAML otherwise.
func (c *Config) Export(path string) error {
	if err := metadatacfg.Export(c, path); err != nil {
		return fmt.Errorf("failed to export configuration: %w", err)
	}
	return nil
}

// LoadFromPath loads the server configuration from the specified file path.
// It initializes a new loader using the default config provider and the
// environment prefix, then reads and decodes the config file. An error is
// returned if any step fails.
func LoadFromPath(path, env string) (server.Config, error) {
	loader := loaders.NewLoader(NewDefault, env)
	if err := loader.SetConfigFilePath(path); err != nil {
		return server.Config{}, fmt.Errorf("invalid config file path: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return server.Config{}, fmt.Errorf("config loader load operation failed: %w", err)
	}
	return cfg.Server, nil
}
