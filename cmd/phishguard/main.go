package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/phishguard/internal/buildinfo"
	"github.com/dmitrijs2005/phishguard/internal/classifier"
	"github.com/dmitrijs2005/phishguard/internal/cli"
	"github.com/dmitrijs2005/phishguard/internal/config"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/repositories/repomanager"
	"github.com/dmitrijs2005/phishguard/internal/security/password"
	"github.com/dmitrijs2005/phishguard/internal/services"
	"github.com/dmitrijs2005/phishguard/internal/session"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, rm, err := repomanager.Open(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	hasher := password.NewHasher(cfg.BcryptCost, cfg.HashWorkers)
	logger.Debug(ctx, "password hasher ready", "bcrypt_cost", hasher.Cost(), "workers", cfg.HashWorkers)
	auth := services.NewAuthService(db, rm, hasher, logger)

	detector := services.NewDetectionService(
		classifier.NewHTTPClassifier(cfg.ClassifierEndpoint, cfg.ClassifierTimeout),
		services.ModelNames{URL: cfg.URLModel, Email: cfg.EmailModel, Website: cfg.WebsiteModel},
		logger,
	)

	s := session.New()
	logger.Info(ctx, "session started", "session_id", s.ID())

	app := cli.NewApp(session.NewGate(s, auth, detector, logger), os.Stdin, os.Stdout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	// The REPL may be blocked reading stdin; a signal ends the process
	// without waiting for the next line.
	select {
	case <-done:
	case <-ctx.Done():
		logger.Info(context.Background(), "shutting down", "session_id", s.ID())
	}
}
