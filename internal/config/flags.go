package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/phishguard/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN (SQLite path or postgres:// URL)
//	-k int      bcrypt cost
//	-w int      concurrent password hashing workers
//	-e string   classifier endpoint base URL
//	-t int      classifier timeout, seconds
//	-l string   log level
//
// Only the flags above are looked at, so -c/-config handled by parseJson does
// not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-k", "-w", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.IntVar(&cfg.BcryptCost, "k", cfg.BcryptCost, "bcrypt cost")
	fs.IntVar(&cfg.HashWorkers, "w", cfg.HashWorkers, "concurrent password hashing workers")
	fs.StringVar(&cfg.ClassifierEndpoint, "e", cfg.ClassifierEndpoint, "classifier endpoint")
	timeout := fs.Int("t", int(cfg.ClassifierTimeout.Seconds()), "classifier timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.ClassifierTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
