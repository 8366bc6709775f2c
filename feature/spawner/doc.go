// Package spawner owns the spawner lifecycle and exposes every interaction
// on spawner loot.
//
// A live spawner is an id, a mob kind and a loot.Accumulator. The Service
// combines the accumulator with the guards: Take and SellAll need the actor's
// open session and a passed cooldown, siphons run on the scheduler and skip a
// cycle while a player mutation holds the accumulator.
//
// # Persistence
//
// The Repository stores spawners in `spawners` and their entries in
// `spawner_loot`, replacing the entry set of a spawner transactionally on
// every save. Backups are JSON snapshots in object storage under
// snapshots/<id>.json.
//
// # Settlement
//
// SellAll removes everything the catalog prices and deposits the manifest
// value through the configured economy provider. A failed deposit returns the
// removed units to the accumulator.
//
// # HTTP Endpoints
//
//   - GET/POST /spawners, GET/DELETE /spawners/:id
//   - POST /spawners/:id/loot
//   - GET /spawners/:id/pages/:page
//   - POST/DELETE /spawners/:id/session, DELETE /actors/:actor/sessions
//   - POST /spawners/:id/take, POST /spawners/:id/sell
//   - GET/POST /spawners/:id/siphons, DELETE /spawners/:id/siphons/:siphon,
//     POST /spawners/:id/siphons/:siphon/drain
//   - POST /spawners/:id/persist, /backup, /import
//   - GET /catalog/:kind, POST /catalog/reload
package spawner
