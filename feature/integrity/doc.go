// Package integrity checks that storage and the database are in the shape the
// spawner service expects.
//
// # Checks Provided
//
//   - Structure: the snapshots/ and catalog/ folders exist in the bucket.
//   - Catalog: the catalog object exists and parses.
//   - Schema: the spawners and spawner_loot tables carry every model column.
//   - Loot: every stored loot row decodes and belongs to a known spawner.
//   - Snapshots: every persisted spawner has a backup and no backup is stale.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/catalog : Runs catalog check.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/loot : Runs stored loot check.
//   - GET /integrity/snapshots : Runs snapshot check.
package integrity
