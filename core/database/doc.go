// Package database opens the gorm connection and inspects table schemas.
//
// Connect supports MySQL for production and SQLite for local runs and tests.
// GetTableColumns returns normalised column names and types for either
// dialect; the integrity check compares them with the spawner models.
//
//	db, err := database.Connect(cfg.Database)
//	columns, err := database.GetTableColumns(db, "spawner_loot")
package database
