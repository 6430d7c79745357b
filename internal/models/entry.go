// Package models defines the domain types for Bloom.
package models

import "time"

// JournalEntry is one timestamped unit of journal or mood text.
// Entries are immutable once created; ordering is append order.
type JournalEntry struct {
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

// Day returns the calendar date of the entry, used for timeline grouping.
func (e JournalEntry) Day() string {
	return e.Date.Format("2006-01-02")
}

// DayGroup is one calendar day of the timeline with its entries in
// chronological order.
type DayGroup struct {
	Day     string         `json:"day"`
	Entries []JournalEntry `json:"entries"`
}

// JournalMetadata is a lightweight representation of one persisted journal
// file, returned by storage list operations.
type JournalMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
