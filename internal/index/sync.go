package index

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/minebloom/bloom/internal/journal"
	"github.com/minebloom/bloom/internal/storage"
)

// Sync walks the journal directory and brings the index up to date:
//   - new/changed journal files are decoded and their entries reindexed
//   - files removed from disk are deleted from the index
//
// Undecodable files are skipped with a warning; a corrupt journal never
// fails the sync.
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List()
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := IndexFile(db, m.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteJournal(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexFile decodes journal file data and replaces its index rows.
// Exported so the watcher and the service can reuse it.
func IndexFile(db *DB, path string, data []byte) error {
	entries, _, err := journal.Decode(data)
	if err != nil {
		return err
	}
	return db.ReplaceJournal(path, checksum(data), entries)
}

func checksum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
