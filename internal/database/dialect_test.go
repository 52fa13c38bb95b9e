package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery leaves placeholders alone", func(t *testing.T) {
		query := "SELECT id FROM games WHERE difficulty = ? AND is_active = ?"
		if result := dialect.RewriteQuery(query); result != query {
			t.Errorf("RewriteQuery() = %v, want %v", result, query)
		}
	})

	t.Run("UpsertUnlockRecord uses ON CONFLICT", func(t *testing.T) {
		query := dialect.UpsertUnlockRecord()
		if !strings.Contains(query, "ON CONFLICT (user_id)") {
			t.Errorf("UpsertUnlockRecord() missing conflict clause: %v", query)
		}
		if strings.Contains(query, "excluded.current_level") {
			t.Error("upsert must not overwrite progression columns")
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery numbers placeholders", func(t *testing.T) {
		query := "SELECT id FROM games WHERE difficulty = ? AND is_active = ?"
		expected := "SELECT id FROM games WHERE difficulty = $1 AND is_active = $2"
		if result := dialect.RewriteQuery(query); result != expected {
			t.Errorf("RewriteQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertUnlockRecord uses ON CONFLICT", func(t *testing.T) {
		query := dialect.UpsertUnlockRecord()
		if !strings.Contains(query, "ON CONFLICT (user_id)") {
			t.Errorf("UpsertUnlockRecord() missing conflict clause: %v", query)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertUnlockRecord uses ON DUPLICATE KEY", func(t *testing.T) {
		query := dialect.UpsertUnlockRecord()
		if !strings.Contains(query, "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertUnlockRecord() missing duplicate key clause: %v", query)
		}
		if strings.Contains(query, "VALUES(current_level)") {
			t.Error("upsert must not overwrite progression columns")
		}
	})
}
