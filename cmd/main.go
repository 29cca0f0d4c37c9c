package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"meterseed/internal/app"
	"meterseed/internal/config"
	"meterseed/internal/prompt"
	"meterseed/internal/simulator"
	"meterseed/internal/storage"
)

// Command meterseed seeds a MongoDB collection with synthetic
// power-meter telemetry.
//
// It asks two questions and acts on the answers:
//   - mode: 1 = normal (household-scale energy), 2 = greater energy
//   - action: 1 = insert a fresh two-month daily series, 2 = delete
//     all existing readings
//
// Usage:
//
//	meterseed [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// A .env file is optional; deployed environments set variables
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Logging)

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("Seeder error: %v", err)
	}
}

// run holds the whole flow so the deferred MongoDB disconnect executes
// on success, error and abort paths alike. Invalid prompt answers abort
// before any storage work and exit normally.
func run(cfg *config.Config, logger *logrus.Logger) error {
	prompter := prompt.New(os.Stdin, os.Stdout)

	mode, err := prompter.AskMode()
	if errors.Is(err, prompt.ErrInvalidInput) {
		logger.Warnf("Aborting: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	action, err := prompter.AskAction()
	if errors.Is(err, prompt.ErrInvalidInput) {
		logger.Warnf("Aborting: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.MongoDB.ConnectTimeout)*time.Second)
	defer cancel()

	repo, err := storage.NewMongoRepo(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Collection)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(ctx); err != nil {
			logger.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{
		"database":   cfg.MongoDB.Database,
		"collection": cfg.MongoDB.Collection,
	}).Info("Connected to MongoDB")

	a := app.New(logger, repo, simulator.New(), cfg.Generation.MonthsBack)
	return a.Run(context.Background(), mode, action)
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
