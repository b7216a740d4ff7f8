// Package config loads fantasypros-mcp configuration from an optional
// TOML file with environment-variable overrides applied on top.
package config

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name     string `toml:"name"`
	HTTPAddr string `toml:"http_addr"`
}

// APIConfig holds upstream FantasyPros API settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Key     string `toml:"key"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Config holds all fantasypros-mcp configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

// Default returns a Config with sensible defaults. The API key has no
// default; it must come from the config file or FANTASYPROS_API_KEY.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name:     "fantasypros-mcp",
			HTTPAddr: ":4280",
		},
		API: APIConfig{
			BaseURL: "https://api.fantasypros.com/public/v2/json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a TOML file (missing file is fine) and
// applies environment overrides. It fails when no API key is configured.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			// File not found — use defaults
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FANTASYPROS_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("FANTASYPROS_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("FPROS_MCP_HTTP_ADDR"); v != "" {
		cfg.Server.HTTPAddr = v
	}
	if v := os.Getenv("FPROS_MCP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if strings.TrimSpace(cfg.API.Key) == "" {
		return Config{}, fmt.Errorf("FANTASYPROS_API_KEY is required (set env var or api.key in %s)", path)
	}
	return cfg, nil
}
