package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/courtside/courtside/internal/flagx"
	"github.com/courtside/courtside/internal/timex"
)

// JsonConfig is the on-disk shape of a JSON config file. Interval fields use
// timex.Duration so they can be written as "168h" or integer nanoseconds.
// Only non-zero values are copied onto the runtime Config.
type JsonConfig struct {
	HTTPAddr           string          `json:"http_addr"`
	DatabaseDSN        string          `json:"database_dsn"`
	SecretKey          string          `json:"secret_key"`
	TokenTTL           timex.Duration  `json:"token_ttl"`
	BcryptCost         int             `json:"bcrypt_cost"`
	Storage            string          `json:"storage"`
	TokenStore         string          `json:"token_store"`
	RedisURL           string          `json:"redis_url"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
	LoginRateLimit     *int            `json:"login_rate_limit"`
	TokenPurgeInterval *timex.Duration `json:"token_purge_interval"`
	ShutdownTimeout    timex.Duration  `json:"shutdown_timeout"`
	LogLevel           string          `json:"log_level"`
}

// parseJson loads the file named by -c / -config, if any, onto config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.Storage, c.Storage)
	setString(&config.TokenStore, c.TokenStore)
	setString(&config.RedisURL, c.RedisURL)
	setString(&config.LogLevel, c.LogLevel)

	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.LoginRateLimit != nil {
		config.LoginRateLimit = *c.LoginRateLimit
	}
	if c.TokenPurgeInterval != nil {
		config.TokenPurgeInterval = c.TokenPurgeInterval.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
