// Package config loads runtime configuration for the courtside CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: COURTSIDE_SERVER, COURTSIDE_TOKEN_FILE, COURTSIDE_TIMEOUT.
//  3. Optional JSON file selected with -c / --config.
//
// Command-line flags on the CLI itself override all of the above.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "token_file": "/home/me/.courtside/token",
//	  "timeout": "10s"
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/courtside/courtside/internal/flagx"
	"github.com/courtside/courtside/internal/timex"
)

type Config struct {
	ServerURL string        `env:"COURTSIDE_SERVER"`
	TokenFile string        `env:"COURTSIDE_TOKEN_FILE"`
	Timeout   time.Duration `env:"COURTSIDE_TIMEOUT"`
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.TokenFile = defaultTokenFile()
	c.Timeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, the environment and the JSON
// file named in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// JsonConfig is the on-disk shape of the CLI config file.
type JsonConfig struct {
	ServerURL string         `json:"server_url"`
	TokenFile string         `json:"token_file"`
	Timeout   timex.Duration `json:"timeout"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.Timeout.Duration != 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".courtside", "token")
	}
	return filepath.Join(home, ".courtside", "token")
}
