package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrationManager_Up(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migration-test.db")

	mgr, err := NewMigrationManager(dbPath)
	if err != nil {
		t.Fatalf("Failed to create migration manager: %v", err)
	}
	if err := mgr.Up(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("Failed to close migration manager: %v", err)
	}

	mgr2, err := NewMigrationManager(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen migration manager: %v", err)
	}
	defer mgr2.Close()

	version, dirty, err := mgr2.Version()
	if err != nil {
		t.Fatalf("Failed to get migration version: %v", err)
	}
	if dirty {
		t.Error("Database is in dirty state after migrations")
	}
	if version < 1 {
		t.Errorf("Expected migration version >= 1, got %d", version)
	}
}

func TestMigrationsCreateRoundsTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rounds-test.db")

	config := DefaultConfig(dbPath)
	config.AutoMigrate = true
	db, err := Open(config)
	if err != nil {
		t.Fatalf("Failed to open database with migrations: %v", err)
	}
	defer db.Close()

	var tableName string
	err = db.Conn().QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name='rounds'
	`).Scan(&tableName)
	if err != nil {
		if err == sql.ErrNoRows {
			t.Fatal("rounds table does not exist after migration")
		}
		t.Fatalf("Failed to query for table: %v", err)
	}

	columns := []string{
		"id", "course", "course_id", "date", "score", "par",
		"round_type", "tees", "course_rating", "slope_rating", "yardage",
		"weather", "temperature", "wind", "course_condition",
		"fairways_hit", "greens_in_regulation", "putts", "chips",
		"bunker_shots", "penalties", "driving_distance",
		"hole_scores", "notes", "created_at",
	}
	for _, col := range columns {
		var colName string
		err = db.Conn().QueryRow(`
			SELECT name FROM pragma_table_info('rounds') WHERE name = ?
		`, col).Scan(&colName)
		if err == sql.ErrNoRows {
			t.Errorf("Column %q does not exist in rounds table", col)
		} else if err != nil {
			t.Fatalf("Failed to query column %q: %v", col, err)
		}
	}
}
