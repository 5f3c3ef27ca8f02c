package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"opcode-map/internal/dispatch"
)

type LogConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Log      LogConfig `yaml:"log"`
	Strategy string    `yaml:"strategy"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
		Strategy: dispatch.AllMatches.String(),
	}
}

// LoadConfig overlays the file at path on Default. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := Load(path, &cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.DispatchStrategy(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) DispatchStrategy() (dispatch.Strategy, error) {
	return dispatch.ParseStrategy(c.Strategy)
}

func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
