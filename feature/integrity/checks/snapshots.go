package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"spawner-loot/core/storage"
	"spawner-loot/feature/spawner"
	"spawner-loot/feature/spawner/models"

	"gorm.io/gorm"
)

// SnapshotReport compares persisted spawners with their backups.
type SnapshotReport struct {
	Persisted int `json:"persisted"`
	Snapshots int `json:"snapshots"`
	// Missing lists persisted spawners without a snapshot.
	Missing []string `json:"missing"`
	// Orphans lists snapshots whose spawner is not persisted.
	Orphans []string `json:"orphans"`
	Status  string   `json:"status"`
}

// CheckSnapshots reconciles the spawners table with the snapshots in bucket.
// Objects under the prefix that are not <id>.json are ignored.
func CheckSnapshots(ctx context.Context, db *gorm.DB, client storage.Client, bucket string) (*SnapshotReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var recs []models.SpawnerRecord
	if err := db.WithContext(ctx).Select("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list spawners: %w", err)
	}
	keys, err := storage.ListKeys(ctx, client, bucket, spawner.SnapshotPrefix)
	if err != nil {
		return nil, err
	}

	backed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		name := strings.TrimPrefix(key, spawner.SnapshotPrefix)
		id, ok := strings.CutSuffix(name, ".json")
		if !ok || id == "" || strings.Contains(id, "/") {
			continue
		}
		backed[id] = struct{}{}
	}

	report := &SnapshotReport{
		Persisted: len(recs),
		Snapshots: len(backed),
		Missing:   []string{},
		Orphans:   []string{},
		Status:    "ok",
	}
	for _, rec := range recs {
		if _, ok := backed[rec.ID]; ok {
			delete(backed, rec.ID)
			continue
		}
		report.Missing = append(report.Missing, rec.ID)
	}
	for id := range backed {
		report.Orphans = append(report.Orphans, id)
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Orphans)

	if len(report.Missing)+len(report.Orphans) > 0 {
		report.Status = "error"
	}
	return report, nil
}
