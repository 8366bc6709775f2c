// Package config loads the spawner-loot configuration.
//
// Values come from the environment, optionally overloaded from a .env file, and
// fall back to the `default` struct tags of each section. Keys are the
// mapstructure paths upper-cased with dots replaced by underscores, so
// engine.cooldown_ms is read from ENGINE_COOLDOWN_MS.
//
// # Sections
//
//   - server: port, API key, economy provider
//   - log: level and format
//   - database: driver (mysql, sqlite) and connection
//   - storage: MinIO/S3 endpoint, credentials and bucket
//   - engine: cooldown, siphon and persistence tuning
//   - catalog: catalog file path or object name
//   - metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Engine.Cooldown())
package config
