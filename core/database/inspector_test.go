package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE spawner_loot (id INTEGER PRIMARY KEY, kind TEXT NOT NULL, count INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "spawner_loot")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}
	assert.Equal(t, "integer", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "text", byName["kind"].Type)
	assert.Equal(t, "NO", byName["kind"].Null)
	assert.Equal(t, "YES", byName["count"].Null)

	// sqlite reports a missing table as no columns
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)

	missing, err := MissingColumns(db, "spawner_loot", []string{"kind", "Fingerprint", "count"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fingerprint"}, missing)
}

func TestGetTableColumnsMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("Kind", "VARCHAR(64)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `spawner_loot`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "spawner_loot")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.Equal(t, "varchar(64)", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
