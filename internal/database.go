package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS chatKV (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens the SQLite database backing the store, creating the
// key/value table if it does not exist yet.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create chatKV table: %w", err)
	}

	return db, nil
}

// GetValue reads a single key from chatKV. A missing or NULL row is
// reported as ok=false, not as an error.
func GetValue(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM chatKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// setValueTx upserts a key inside an open transaction.
func setValueTx(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(
		"INSERT INTO chatKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// deleteValueTx removes a key inside an open transaction.
func deleteValueTx(tx *sql.Tx, key string) error {
	_, err := tx.Exec("DELETE FROM chatKV WHERE key = ?", key)
	return err
}
