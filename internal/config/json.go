package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/phishguard/internal/flagx"
	"github.com/dmitrijs2005/phishguard/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file override only what it mentions; durations accept "10s" or nanoseconds.
type JsonConfig struct {
	DatabaseDSN        *string         `json:"database_dsn"`
	BcryptCost         *int            `json:"bcrypt_cost"`
	HashWorkers        *int            `json:"hash_workers"`
	ClassifierEndpoint *string         `json:"classifier_endpoint"`
	ClassifierTimeout  *timex.Duration `json:"classifier_timeout"`
	URLModel           *string         `json:"url_model"`
	EmailModel         *string         `json:"email_model"`
	WebsiteModel       *string         `json:"website_model"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config (or
// $PHISHGUARD_CONFIG). Nothing happens when no path is given; unreadable or
// invalid files panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setIf(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIf(&cfg.BcryptCost, jc.BcryptCost)
	setIf(&cfg.HashWorkers, jc.HashWorkers)
	setIf(&cfg.ClassifierEndpoint, jc.ClassifierEndpoint)
	setIf(&cfg.URLModel, jc.URLModel)
	setIf(&cfg.EmailModel, jc.EmailModel)
	setIf(&cfg.WebsiteModel, jc.WebsiteModel)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.ClassifierTimeout != nil {
		cfg.ClassifierTimeout = jc.ClassifierTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
