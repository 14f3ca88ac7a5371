package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SampleSessionsJSON is a persisted session payload with two sessions:
// "greetings" (two messages) first in display order, "empty" second.
const SampleSessionsJSON = `[
  {
    "id": "sess-greetings",
    "name": "hello there",
    "messages": [
      {"id": "msg-1000-user", "text": "hello there", "sender": "user", "timestamp": 1000},
      {"id": "msg-1500-assistant", "text": "hello there", "sender": "assistant", "timestamp": 1500}
    ]
  },
  {
    "id": "sess-empty",
    "name": "New chat - 2024-01-01 00:00",
    "messages": []
  }
]`

// SeedSampleState seeds the database with SampleSessionsJSON and marks the
// given session active
func SeedSampleState(t *testing.T, db *sql.DB, activeID string) {
	t.Helper()
	InsertValue(t, db, "sessions", SampleSessionsJSON)
	if activeID != "" {
		InsertValue(t, db, "last_active_session_id", activeID)
	}
}

// CreateDBFixture creates an on-disk SQLite database with the chatKV
// table, returning its path
func CreateDBFixture(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "chat.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS chatKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	return dbPath
}

// CreateConfigFixture writes a TOML config file and returns its path
func CreateConfigFixture(t *testing.T, storagePath string, delayMs int, verbose bool) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("storage_path = %q\nresponse_delay_ms = %d\nverbose = %t\n",
		storagePath, delayMs, verbose)
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return cfgPath
}
