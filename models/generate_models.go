package models

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Schema tooling used by the CLI:

	nexusconsult migrate          creates or updates every collection table
	nexusconsult generate-models  migrates, prints the column report, then writes
	                              typed query helpers to ./generated

The column report lists database columns that no model field maps to. A column
added by hand in the Supabase dashboard shows up here until the model catches up.

Example output:
	=== COLUMN REPORT ===
	--- Table: team_members ---
	  - instagram_url
	--- Table: testimonials ---
	All columns are accounted for in the model.
*/

// Migrate creates or updates the table of every collection.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Int("tables", len(All())).Msg("Database migration completed")
	return nil
}

// GenerateModels migrates, reports unmapped columns and writes gorm/gen query code to outPath.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := Migrate(db); err != nil {
		return err
	}

	report, err := ColumnReport(db)
	if err != nil {
		return err
	}
	PrintColumnReport(report)

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("Model generation complete")
	return nil
}

// ColumnReport maps each collection to the database columns its model does not declare.
func ColumnReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	for _, model := range All() {
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			continue
		}
		table := tabler.TableName()

		dbColumns, err := getTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		report[table] = MissingColumns(dbColumns, ModelColumns(model))
	}
	return report, nil
}

func PrintColumnReport(report map[string][]string) {
	tables := make([]string, 0, len(report))
	for table := range report {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	fmt.Println("=== COLUMN REPORT ===")
	total := 0
	for _, table := range tables {
		fmt.Printf("--- Table: %s ---\n", table)
		if len(report[table]) == 0 {
			fmt.Println("All columns are accounted for in the model.")
			continue
		}
		for _, col := range report[table] {
			fmt.Printf("  - %s\n", col)
		}
		total += len(report[table])
	}
	fmt.Printf("Total unmapped columns: %d\n", total)
}

// getTableColumns retrieves column names from a table through the dialect's migrator.
func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	if !db.Migrator().HasTable(tableName) {
		return nil, fmt.Errorf("table %s does not exist", tableName)
	}
	types, err := db.Migrator().ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	columns := make([]string, 0, len(types))
	for _, ct := range types {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// ModelColumns returns the column names a model declares through its db tags.
func ModelColumns(model interface{}) []string {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var fields []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		name := strings.Split(field.Tag.Get("db"), ",")[0]
		if name != "" && name != "-" {
			fields = append(fields, name)
		}
	}
	return fields
}

// MissingColumns returns the database columns with no matching model field.
func MissingColumns(dbColumns, modelFields []string) []string {
	known := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		known[field] = true
	}

	missing := []string{}
	for _, col := range dbColumns {
		if !known[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
