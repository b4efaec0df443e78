package app

import (
	"fmt"
	"io/fs"

	"github.com/hance08/splitter/internal/config"
	"github.com/hance08/splitter/internal/events"
	"github.com/hance08/splitter/internal/events/kafka"
	"github.com/hance08/splitter/internal/logger"
	"github.com/hance08/splitter/internal/service"
	"github.com/hance08/splitter/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Store   *store.Store
	Log     *zap.Logger
}

// NewApp opens the database, logger and event publisher described by cfg
// and wires them into the service layer. Paths in cfg must already be resolved.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	source := cfg.Database.Path
	if cfg.Database.Driver == "postgres" {
		source = cfg.Database.DSN
	}

	dbStore, err := store.NewStore(cfg.Database.Driver, source, migrationFS)
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Events.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Events.Kafka.Brokers)
	}

	svc := service.NewService(dbStore, cfg,
		service.WithLogger(log),
		service.WithPublisher(publisher),
	)

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn("failed to close event publisher", zap.Error(err))
		}
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
		_ = log.Sync()
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Log:     log,
	}, cleanup, nil
}
