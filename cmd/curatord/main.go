// curatord is the HTTP curation service: it accepts raw content batches
// over the API and returns curated newsletter documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonesrussell/digest-curator/internal/api"
	"github.com/jonesrussell/digest-curator/internal/classifier"
	"github.com/jonesrussell/digest-curator/internal/config"
	"github.com/jonesrussell/digest-curator/internal/curator"
	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/editorial"
	"github.com/jonesrussell/digest-curator/internal/engagement"
	"github.com/jonesrussell/digest-curator/internal/logger"
	"github.com/jonesrussell/digest-curator/internal/processor"
	"github.com/jonesrussell/digest-curator/internal/taxonomy"
	"github.com/jonesrussell/digest-curator/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath(""))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tax := taxonomy.Default()
	if cfg.Taxonomy.Path != "" {
		tax, err = taxonomy.Load(cfg.Taxonomy.Path)
		if err != nil {
			return fmt.Errorf("load taxonomy: %w", err)
		}
		log.Info("taxonomy loaded from file",
			logger.String("path", cfg.Taxonomy.Path),
			logger.Int("topics", len(tax.Topics)))
	}

	tel := telemetry.NewProvider()

	cur := curator.New(
		classifier.New(tax, log),
		engagement.New(log),
		editorial.New(),
		processor.New(cfg.Service.Concurrency, log),
		tel,
		log,
		curator.Options{
			Defaults: domain.CurationConfig{
				MinRelevance: cfg.Curation.MinRelevance,
				PoolSize:     cfg.Curation.PoolSize,
				PublishCount: cfg.Curation.PublishCount,
			},
			Source: cfg.Service.Source,
		},
	)

	handler := api.NewHandler(cur, tax, log, cfg.Service.Version)
	server := api.NewServer(handler, cfg, tel, log)

	log.Info("starting curator service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.String("source", cfg.Service.Source))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("curator service stopped")
	return nil
}
