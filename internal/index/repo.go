package index

import (
	"fmt"
	"time"

	"github.com/minebloom/bloom/internal/models"
)

// SearchResult is one full-text hit inside a journal file.
type SearchResult struct {
	Path    string    `json:"path"`
	Day     string    `json:"day"`
	TS      time.Time `json:"ts"`
	Snippet string    `json:"snippet"`
}

// ReplaceJournal replaces all indexed rows for one journal file within a
// transaction: the journals row is upserted and every entry (plus its FTS
// shadow) is rewritten in append order.
func (db *DB) ReplaceJournal(path, checksum string, entries []models.JournalEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		INSERT INTO journals (path, checksum, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, path, checksum, time.Now())
	if err != nil {
		return fmt.Errorf("index: upsert journal: %w", err)
	}

	_, _ = tx.Exec(`DELETE FROM entries WHERE path = ?`, path)
	ftsDeleteAll(tx, path)

	if len(entries) > 0 {
		stmt, err := tx.Prepare(`INSERT INTO entries (path, seq, day, ts, content) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare entry insert: %w", err)
		}
		defer stmt.Close()
		for seq, e := range entries {
			if _, err := stmt.Exec(path, seq, e.Day(), e.Date, e.Content); err != nil {
				return fmt.Errorf("index: insert entry: %w", err)
			}
			if err := ftsInsert(tx, path, seq, e.Content); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// DeleteJournal removes a journal file and its entries from the index.
func (db *DB) DeleteJournal(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDeleteAll(tx, path)
	_, _ = tx.Exec(`DELETE FROM entries WHERE path = ?`, path)
	_, _ = tx.Exec(`DELETE FROM journals WHERE path = ?`, path)

	return tx.Commit()
}

// AllChecksums returns the stored checksum for every indexed journal file.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM journals`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// Days returns the distinct calendar days with entries in one journal
// file, most recent first.
func (db *DB) Days(path string) ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT day FROM entries WHERE path = ? ORDER BY day DESC`, path)
	if err != nil {
		return nil, fmt.Errorf("index: days: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// EntryCount returns the number of indexed entries for one journal file.
func (db *DB) EntryCount(path string) (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM entries WHERE path = ?`, path).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("index: entry count: %w", err)
	}
	return n, nil
}
