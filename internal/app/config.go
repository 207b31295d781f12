package app

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir          string `yaml:"store_dir"`     // storage directory, e.g. $HOME/.credstore
	CacheEnabled bool   `yaml:"cache_enabled"` // warm the TTL cache at startup
	Debug        bool   `yaml:"debug"`         // verbose internal tracing

	Logger *slog.Logger `yaml:"-"` // optional; built from Debug when nil
}

// LoadConfig reads a YAML config file. Environment variables in the file
// body ($VAR or ${VAR}) are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
