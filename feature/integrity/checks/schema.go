package checks

import (
	"fmt"
	"reflect"
	"strings"

	"spawner-loot/core/database"
	"spawner-loot/feature/spawner/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the database with the models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// Column is a column a model expects. Type is empty unless the gorm tag
// pins one.
type Column struct {
	Name string
	Type string
}

// Model is a persisted gorm model.
type Model interface{ TableName() string }

// Models lists the persisted models in migration order.
var Models = []Model{models.SpawnerRecord{}, models.LootRecord{}}

// ExpectedColumns reads the columns of model from its gorm tags.
func ExpectedColumns(model any) []Column {
	typ := reflect.TypeOf(model)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	var cols []Column
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("gorm")
		name := parseGormColumn(tag)
		if name == "" {
			continue
		}
		cols = append(cols, Column{Name: name, Type: strings.ToLower(parseGormType(tag))})
	}
	return cols
}

// ColumnNames returns the names of cols.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// CheckSchema verifies every table in Models against its gorm tags.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range Models {
		table := model.TableName()
		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		byName := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			byName[col.Field] = col
		}

		tbl := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}
		for _, want := range ExpectedColumns(model) {
			got, ok := byName[want.Name]
			if !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, want.Name)
				tbl.Status = "error"
				continue
			}
			// Soft check: mysql reports "text", sqlite may add modifiers
			if want.Type != "" && !strings.Contains(got.Type, want.Type) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", want.Name, want.Type, got.Type))
				tbl.Status = "error"
			}
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}
	return report, nil
}

func parseGormColumn(tag string) string {
	return tagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return tagValue(tag, "type:")
}

func tagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
