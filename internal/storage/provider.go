// Package storage defines the journal directory file-system abstraction.
package storage

import "github.com/minebloom/bloom/internal/models"

// Provider is the interface for journal file operations.
type Provider interface {
	// List returns metadata for every .json journal file in the directory.
	List() ([]models.JournalMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the journal dir).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the journal dir).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the journal dir).
	Delete(path string) error
}
