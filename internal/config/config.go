// Package config loads the server's YAML configuration file, grounded on
// the same gopkg.in/yaml.v3 decode-into-struct pattern used elsewhere in
// the example corpus for small service configs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	ListenAddr   string  `yaml:"listen_addr"`
	MetricsAddr  string  `yaml:"metrics_addr"`
	MaxPlayers   int32   `yaml:"max_players"`
	ViewDistance int32   `yaml:"view_distance"`
	MOTD         string  `yaml:"motd"`
	AcceptRate   float64 `yaml:"accept_rate_per_sec"`
	AcceptBurst  int     `yaml:"accept_burst"`
	LogLevel     string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		ListenAddr:   ":25565",
		MetricsAddr:  ":9100",
		MaxPlayers:   20,
		ViewDistance: 10,
		MOTD:         "A Minecraft Server",
		AcceptRate:   20,
		AcceptBurst:  40,
		LogLevel:     "info",
	}
}

// Load reads and decodes a YAML config file, filling any field the file
// omits with the value from Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
