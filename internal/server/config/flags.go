package config

import (
	"flag"
	"io"
	"time"

	"github.com/courtside/courtside/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            HTTP bind address (e.g. ":5000")
//	-d string            PostgreSQL DSN
//	-s string            JWT HMAC secret key
//	-t int               token validity, hours
//	-k int               bcrypt cost
//	-r string            Redis URL
//	-l int               auth requests per minute per IP (0 disables)
//	-storage string      credential store: postgres | memory
//	-token-store string  token records: postgres | redis | memory
//	-log-level string    debug | info | warn | error
//
// Args are filtered with flagx.FilterArgs first so the -c/-config flag
// handled by parseJson does not trip this flag set.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args,
		"-a", "-d", "-s", "-t", "-k", "-r", "-l", "-storage", "-token-store", "-log-level")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Hours()), "token validity (in hours)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")
	fs.IntVar(&config.LoginRateLimit, "l", config.LoginRateLimit, "auth requests per minute per client")
	fs.StringVar(&config.Storage, "storage", config.Storage, "credential store backend")
	fs.StringVar(&config.TokenStore, "token-store", config.TokenStore, "token record backend")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Hour
		}
	})
	return nil
}
