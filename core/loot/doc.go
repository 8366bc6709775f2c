// Package loot implements the loot accumulation and transfer engine of a spawner.
//
// A spawner does not drop mob loot on the ground; it stores it in an Accumulator,
// an effectively unbounded mapping from resource Signature to a 64-bit count.
//
// # Signatures
//
// A Signature is the identity key of a resource unit: its kind plus an xxhash
// fingerprint of a canonical encoding of its attributes (display name, lore,
// enchantments, durability, variant). Two units are fungible iff their
// signatures are equal. The count never takes part in the signature.
//
// # Capacity and Pages
//
// Counts are translated into virtual stacks using the kind's stack cap from a
// StackSizer (usually the item catalog). Pages are fixed windows of PageSize (45)
// virtual stacks, always computed from the current state. A page outside
// [1, TotalPages] is reported with ok=false so callers can re-clamp.
//
// # Transfers
//
//   - MoveToSink / TryMoveToSink: move units into a bounded Sink (inventory, hopper).
//   - RemoveBySignature: remove an amount outright, no capacity involved.
//   - RemoveAll: bulk removal driven by an Appraiser, returning a Manifest for settlement.
//
// Every mutation is linearizable per accumulator. Accumulators of different
// spawners share nothing.
//
// # Usage
//
//	acc := loot.New(catalog)
//	acc.AccumulateUnit(loot.Unit{Kind: "BONE", Count: 130})
//	inv := loot.NewContainer(36, 0)
//	res := acc.MoveToSink(inv, loot.AllSignatures(200))
//	page, ok := acc.Page(1)
package loot
