package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"spawner-loot/core/loot"
)

// SpawnerRecord is one row of the 'spawners' table.
type SpawnerRecord struct {
	ID        string    `gorm:"column:id;primaryKey;size:64"`
	Kind      string    `gorm:"column:kind;size:64;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (SpawnerRecord) TableName() string {
	return "spawners"
}

// LootRecord is one accumulator entry in the 'spawner_loot' table.
//
// Count is stored as decimal text: sqlite drivers reject uint64 values with
// the high bit set and saturated counts reach math.MaxUint64.
type LootRecord struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	SpawnerID  string `gorm:"column:spawner_id;size:64;not null;index"`
	Signature  string `gorm:"column:signature;size:96;not null"`
	Kind       string `gorm:"column:kind;size:64;not null"`
	Attributes string `gorm:"column:attributes;type:text"`
	Count      string `gorm:"column:count;size:20;not null"`
}

// TableName overrides the table name.
func (LootRecord) TableName() string {
	return "spawner_loot"
}

// LootRecordOf converts an entry for storage.
func LootRecordOf(spawnerID string, e loot.Entry) (LootRecord, error) {
	rec := LootRecord{
		SpawnerID: spawnerID,
		Signature: e.Signature.String(),
		Kind:      e.Signature.Kind,
		Count:     strconv.FormatUint(e.Count, 10),
	}
	if !e.Attributes.IsZero() {
		data, err := json.Marshal(e.Attributes)
		if err != nil {
			return LootRecord{}, fmt.Errorf("failed to encode attributes of %s: %w", rec.Signature, err)
		}
		rec.Attributes = string(data)
	}
	return rec, nil
}

// Entry converts the record back.
func (r LootRecord) Entry() (loot.Entry, error) {
	sig, err := loot.ParseSignature(r.Signature)
	if err != nil {
		return loot.Entry{}, fmt.Errorf("row %d: %w", r.ID, err)
	}
	count, err := strconv.ParseUint(r.Count, 10, 64)
	if err != nil {
		return loot.Entry{}, fmt.Errorf("row %d: invalid count %q: %w", r.ID, r.Count, err)
	}
	e := loot.Entry{Signature: sig, Count: count}
	if r.Attributes != "" {
		if err := json.Unmarshal([]byte(r.Attributes), &e.Attributes); err != nil {
			return loot.Entry{}, fmt.Errorf("row %d: invalid attributes: %w", r.ID, err)
		}
	}
	return e, nil
}
