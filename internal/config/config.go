// Package config handles configuration for PhishGuard: defaults, a JSON file
// overlay, environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest work factor accepted for password hashing.
const MinBcryptCost = 10

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: SQLite file path / file: URI, or a postgres:// URL.
//   - BcryptCost: bcrypt work factor for new password hashes.
//   - HashWorkers: how many bcrypt computations may run at once.
//   - ClassifierEndpoint / ClassifierTimeout: inference service base URL and
//     per-request timeout.
//   - URLModel / EmailModel / WebsiteModel: model names on the inference service.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDSN        string        `env:"PHISHGUARD_DATABASE_DSN"`
	BcryptCost         int           `env:"PHISHGUARD_BCRYPT_COST"`
	HashWorkers        int           `env:"PHISHGUARD_HASH_WORKERS"`
	ClassifierEndpoint string        `env:"PHISHGUARD_CLASSIFIER_ENDPOINT"`
	ClassifierTimeout  time.Duration `env:"PHISHGUARD_CLASSIFIER_TIMEOUT"`
	URLModel           string        `env:"PHISHGUARD_URL_MODEL"`
	EmailModel         string        `env:"PHISHGUARD_EMAIL_MODEL"`
	WebsiteModel       string        `env:"PHISHGUARD_WEBSITE_MODEL"`
	LogLevel           string        `env:"PHISHGUARD_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults. The database file
// name matches the one used by earlier releases so existing accounts keep
// working.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "db.sqlite3"
	c.BcryptCost = 12
	c.HashWorkers = runtime.NumCPU()
	c.ClassifierEndpoint = "http://127.0.0.1:8080"
	c.ClassifierTimeout = 10 * time.Second
	c.URLModel = "url"
	c.EmailModel = "email"
	c.WebsiteModel = "website"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then overlays the JSON file,
// environment variables and finally command-line flags. It panics on a
// malformed source, like the rest of the start-up path.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings that would weaken stored passwords.
func (c *Config) Validate() error {
	if c.BcryptCost < MinBcryptCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, MinBcryptCost, bcrypt.MaxCost)
	}
	return nil
}
