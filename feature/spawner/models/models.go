package models

import (
	"time"

	"spawner-loot/core/loot"
)

// Summary describes a live spawner.
type Summary struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Entries    int    `json:"entries"`
	TotalUnits uint64 `json:"total_units"`
	Stacks     uint64 `json:"stacks"`
	Pages      int    `json:"pages"`
	Owner      string `json:"owner,omitempty"`
	Siphons    int    `json:"siphons"`
}

// Snapshot is the JSON backup of one spawner, stored as snapshots/<id>.json.
type Snapshot struct {
	ID      string       `json:"id"`
	Kind    string       `json:"kind"`
	TakenAt time.Time    `json:"taken_at"`
	Entries []loot.Entry `json:"entries"`
}

// TakeRequest moves loot into the inventory the client sends. Slot picks one
// virtual stack of Page; otherwise Signature (or all signatures) up to Count
// units, where 0 means no limit.
type TakeRequest struct {
	Actor     string       `json:"actor"`
	Inventory []loot.Stack `json:"inventory"`
	Page      int          `json:"page,omitempty"`
	Slot      *int         `json:"slot,omitempty"`
	Signature string       `json:"signature,omitempty"`
	Count     uint64       `json:"count,omitempty"`
}

// TakeReport is the outcome of a take.
type TakeReport struct {
	Result    loot.TransferResult `json:"result"`
	Inventory []loot.Stack        `json:"inventory"`
}

// SaleReport is the outcome of a sell-all.
type SaleReport struct {
	Provider string        `json:"provider"`
	Manifest loot.Manifest `json:"manifest"`
}

// SiphonInfo describes an attached siphon and its buffered content.
type SiphonInfo struct {
	ID    string `json:"id"`
	Slots int    `json:"slots"`
	Units uint64 `json:"units"`
}

// CreateRequest creates a spawner. An empty ID is generated.
type CreateRequest struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// LootRequest feeds produced units into a spawner.
type LootRequest struct {
	Units []loot.Unit `json:"units"`
}

// LootReport is the outcome of a loot request.
type LootReport struct {
	Added     uint64 `json:"added"`
	Saturated bool   `json:"saturated"`
}

// SiphonRequest attaches a siphon with Slots slots.
type SiphonRequest struct {
	ID    string `json:"id"`
	Slots int    `json:"slots"`
}

// ActorRequest names the acting player.
type ActorRequest struct {
	Actor string `json:"actor"`
}
