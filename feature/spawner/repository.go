package spawner

import (
	"context"
	"errors"
	"fmt"

	"spawner-loot/core/loot"
	"spawner-loot/feature/spawner/models"

	"gorm.io/gorm"
)

// Repository persists spawners and their accumulator entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the spawners and spawner_loot tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.SpawnerRecord{}, &models.LootRecord{})
}

// Save writes the spawner row and replaces its entry set in one transaction.
func (r *Repository) Save(ctx context.Context, rec models.SpawnerRecord, entries []loot.Entry) error {
	rows := make([]models.LootRecord, 0, len(entries))
	for _, e := range entries {
		row, err := models.LootRecordOf(rec.ID, e)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		if err := tx.Where("spawner_id = ?", rec.ID).Delete(&models.LootRecord{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save spawner %s: %w", rec.ID, err)
	}
	return nil
}

// Load returns the spawner row and its entries.
func (r *Repository) Load(ctx context.Context, id string) (models.SpawnerRecord, []loot.Entry, error) {
	var rec models.SpawnerRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return rec, nil, fmt.Errorf("failed to load spawner %s: %w", id, err)
	}

	entries, err := r.entries(ctx, id)
	if err != nil {
		return rec, nil, err
	}
	return rec, entries, nil
}

func (r *Repository) entries(ctx context.Context, id string) ([]loot.Entry, error) {
	var rows []models.LootRecord
	if err := r.db.WithContext(ctx).Where("spawner_id = ?", id).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load loot of %s: %w", id, err)
	}

	entries := make([]loot.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.Entry()
		if err != nil {
			return nil, fmt.Errorf("spawner %s: %w", id, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// List returns every spawner row ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.SpawnerRecord, error) {
	var recs []models.SpawnerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list spawners: %w", err)
	}
	return recs, nil
}

// Delete removes the spawner and its entries. Missing spawners are not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("spawner_id = ?", id).Delete(&models.LootRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.SpawnerRecord{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete spawner %s: %w", id, err)
	}
	return nil
}
