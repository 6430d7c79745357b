//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; search uses a LIKE fallback on entries.content.
	return nil
}

func ftsInsert(_ *sql.Tx, _ string, _ int, _ string) error {
	// Content is already stored in the entries table; nothing extra to do.
	return nil
}

func ftsDeleteAll(_ *sql.Tx, _ string) {}

// Search performs a LIKE-based search within one journal file (fallback
// when FTS5 is not compiled in).
func (db *DB) Search(path, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT path, day, ts, substr(content, 1, 200)
		FROM entries
		WHERE path = ? AND content LIKE ?
		ORDER BY ts DESC
		LIMIT ?
	`, path, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Path, &r.Day, &r.TS, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
