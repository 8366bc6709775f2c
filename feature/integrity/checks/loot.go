package checks

import (
	"fmt"
	"sort"

	"spawner-loot/core/loot"
	"spawner-loot/feature/spawner/models"

	"gorm.io/gorm"
)

// LootReport summarizes the persisted accumulator rows.
type LootReport struct {
	Spawners int `json:"spawners"`
	Rows     int `json:"rows"`
	// Invalid lists rows whose signature, count or attributes do not decode,
	// and rows whose fingerprint does not match their attributes.
	Invalid []string `json:"invalid"`
	// Orphans lists spawner ids that own loot rows but have no spawner row.
	Orphans []string `json:"orphans"`
	// Duplicates lists "spawner/signature" pairs stored more than once.
	Duplicates []string `json:"duplicates"`
	Status     string   `json:"status"`
}

// CheckLoot decodes every stored loot row and cross-checks it against the
// spawners table.
func CheckLoot(db *gorm.DB) (*LootReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var spawners []models.SpawnerRecord
	if err := db.Select("id").Find(&spawners).Error; err != nil {
		return nil, fmt.Errorf("failed to list spawners: %w", err)
	}
	known := make(map[string]struct{}, len(spawners))
	for _, sp := range spawners {
		known[sp.ID] = struct{}{}
	}

	var rows []models.LootRecord
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list loot: %w", err)
	}

	report := &LootReport{
		Spawners:   len(spawners),
		Rows:       len(rows),
		Invalid:    []string{},
		Orphans:    []string{},
		Duplicates: []string{},
		Status:     "ok",
	}

	orphans := make(map[string]struct{})
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		e, err := row.Entry()
		if err != nil {
			report.Invalid = append(report.Invalid, err.Error())
		} else if want := loot.NewSignature(e.Signature.Kind, e.Attributes); want != e.Signature {
			report.Invalid = append(report.Invalid,
				fmt.Sprintf("row %d: signature %s does not match its attributes, want %s", row.ID, e.Signature, want))
		}
		if _, ok := known[row.SpawnerID]; !ok {
			orphans[row.SpawnerID] = struct{}{}
		}
		key := row.SpawnerID + "/" + row.Signature
		if _, dup := seen[key]; dup {
			report.Duplicates = append(report.Duplicates, key)
		}
		seen[key] = struct{}{}
	}
	for id := range orphans {
		report.Orphans = append(report.Orphans, id)
	}
	sort.Strings(report.Orphans)

	if len(report.Invalid)+len(report.Orphans)+len(report.Duplicates) > 0 {
		report.Status = "error"
	}
	return report, nil
}
