package cmd

import (
	"context"
	"fmt"

	"spawner-loot/core/catalog"
	"spawner-loot/core/config"
	"spawner-loot/core/database"
	"spawner-loot/core/guard"
	"spawner-loot/core/logger"
	"spawner-loot/core/siphon"
	"spawner-loot/core/storage"
	"spawner-loot/feature/economy"
	"spawner-loot/feature/spawner"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is the shared setup of every command.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// setup loads configuration, creates the logger and the storage client, and
// connects the database when requireDB is set or the connection succeeds.
func setup(requireDB bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Engine.PageSizeValid() {
		return nil, fmt.Errorf("engine.page_size is fixed, got %d", cfg.Engine.PageSize)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	e := &env{cfg: cfg, logger: logg, store: store}
	db, err := database.Connect(cfg.Database)
	switch {
	case err != nil && requireDB:
		return nil, fmt.Errorf("database connection required: %w", err)
	case err != nil:
		logg.Warn("Optional database connection failed", zap.Error(err))
	default:
		e.db = db
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}
	return e, nil
}

// migrate creates or updates the spawner and ledger tables.
func (e *env) migrate() error {
	if e.db == nil {
		return spawner.ErrNoPersistence
	}
	if err := spawner.NewRepository(e.db).Migrate(); err != nil {
		return fmt.Errorf("failed to migrate spawner tables: %w", err)
	}
	if err := economy.NewLedger(e.db).Migrate(); err != nil {
		return fmt.Errorf("failed to migrate ledger: %w", err)
	}
	return nil
}

// loadCatalog loads the item catalog from the configured file or object. The
// service is returned on error too, holding the empty catalog until a reload
// succeeds.
func (e *env) loadCatalog(ctx context.Context) (*catalog.Service, error) {
	var source catalog.Source
	if e.cfg.Catalog.Path != "" {
		source = catalog.FileSource(e.cfg.Catalog.Path)
	} else {
		source = catalog.StorageSource(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object)
	}
	svc := catalog.NewService(source, e.logger)
	_, err := svc.Reload(ctx)
	return svc, err
}

// spawnerService builds the spawner service over the connected database and
// restores the persisted spawners.
func (e *env) spawnerService(ctx context.Context, cat *catalog.Service, cooldown *guard.Cooldown, sched *siphon.Scheduler) (*spawner.Service, error) {
	deps := spawner.Deps{
		Catalog:     cat,
		Storage:     e.store,
		Bucket:      e.cfg.Storage.Bucket,
		Cooldown:    cooldown,
		Scheduler:   sched,
		SiphonBatch: e.cfg.Engine.Batch(),
		Logger:      e.logger,
	}

	provider, err := economy.New(e.cfg.Server.Economy, e.db, e.logger)
	if err != nil {
		return nil, err
	}
	deps.Economy = provider

	if e.db != nil {
		deps.Repository = spawner.NewRepository(e.db)
	}
	svc := spawner.NewService(deps)
	if deps.Repository != nil {
		n, err := svc.Restore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to restore spawners: %w", err)
		}
		e.logger.Info("Restored spawners", zap.Int("count", n))
	}
	return svc, nil
}
