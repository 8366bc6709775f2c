package integrity

import (
	"context"
	"errors"

	"spawner-loot/core/storage"
	"spawner-loot/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoStorage is returned by storage checks when no client is configured.
var ErrNoStorage = errors.New("object storage is not configured")

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	catalog string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. catalog is the object name of
// the item catalog inside bucket; client and db may be nil.
func NewService(client storage.Client, bucket, catalog string, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		catalog: catalog,
		db:      db,
		logger:  logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCatalog inspects the catalog object.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckCatalog(ctx, s.client, s.bucket, s.catalog)
}

// CheckSchema compares the database tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckLoot validates the persisted loot rows.
func (s *Service) CheckLoot() (*checks.LootReport, error) {
	return checks.CheckLoot(s.db)
}

// CheckSnapshots compares the persisted spawners with their backups.
func (s *Service) CheckSnapshots(ctx context.Context) (*checks.SnapshotReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckSnapshots(ctx, s.db, s.client, s.bucket)
}

// Report runs every check. Failures are recorded per check.
func (s *Service) Report(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if missing, err := s.CheckStructure(ctx); err != nil {
		report["structure"] = failed(err)
	} else {
		report["structure"] = map[string]any{"status": "ok", "missing": missing}
	}

	if cat, err := s.CheckCatalog(ctx); err != nil {
		report["catalog"] = failed(err)
	} else {
		report["catalog"] = cat
	}

	if schema, err := s.CheckSchema(); err != nil {
		report["schema"] = failed(err)
	} else {
		report["schema"] = schema
	}

	if loot, err := s.CheckLoot(); err != nil {
		report["loot"] = failed(err)
	} else {
		report["loot"] = loot
	}

	if snaps, err := s.CheckSnapshots(ctx); err != nil {
		report["snapshots"] = failed(err)
	} else {
		report["snapshots"] = snaps
	}
	return report
}

func failed(err error) map[string]any {
	return map[string]any{"status": "error", "error": err.Error()}
}
