// Package journal implements the per-user entry store: an ordered,
// append-only collection of timestamped text entries persisted to one
// JSON file per user.
//
// Persistence is best-effort. The in-memory sequence stays authoritative
// when a save fails; the failure is reported to the caller and remembered
// by the store, but it never invalidates the appended entry.
package journal

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/minebloom/bloom/internal/apperr"
	"github.com/minebloom/bloom/internal/models"
	"github.com/minebloom/bloom/internal/storage"
)

// record is the wire form of one entry in the persisted journal file.
type record struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// timestampLayouts are accepted when reading persisted entries. Files
// written by the store use RFC 3339; the laxer layouts keep hand-edited
// or older files loadable.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FileName derives the deterministic journal file name for a display name.
// Only letters, digits, spaces, dots and underscores survive; trailing
// spaces are trimmed.
func FileName(displayName string) string {
	var b strings.Builder
	for _, r := range displayName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	return "journals_" + strings.TrimRight(b.String(), " ") + ".json"
}

// ParseWhen parses a user-supplied timestamp. A date-only value is
// normalized to midnight of that date in local time. An empty string
// yields the zero time (meaning "now" to Append).
func ParseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("journal: unrecognized timestamp: " + s)
}

// Decode parses the persisted journal file format: a JSON array of
// {"date", "content"} records. Unparseable timestamps fall back to the
// current time; the second return value counts those recoveries. Invalid
// JSON fails the whole decode.
func Decode(data []byte) ([]models.JournalEntry, int, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, 0, err
	}
	recovered := 0
	entries := make([]models.JournalEntry, 0, len(recs))
	for _, r := range recs {
		ts, err := ParseWhen(r.Date)
		if err != nil || ts.IsZero() {
			ts = time.Now()
			recovered++
		}
		entries = append(entries, models.JournalEntry{Date: ts, Content: r.Content})
	}
	return entries, recovered, nil
}

// LoadResult reports what happened while reading the backing file.
// Load never fails the caller; degraded outcomes are visible here.
type LoadResult struct {
	Found               bool `json:"found"`                // backing file existed
	Corrupt             bool `json:"corrupt"`              // file existed but was not a valid journal; store starts empty
	RecoveredTimestamps int  `json:"recovered_timestamps"` // entries whose timestamp fell back to the current time
}

// Store owns one user's ordered journal entries and their backing file.
type Store struct {
	mu      sync.Mutex
	fs      storage.Provider
	file    string
	entries []models.JournalEntry
	saveErr error
}

// Open creates a store for the given display name, loading any previously
// persisted entries. Missing files yield an empty store; corrupt files are
// left untouched on disk and the store starts empty.
func Open(fs storage.Provider, displayName string) (*Store, LoadResult) {
	s := &Store{fs: fs, file: FileName(displayName)}
	return s, s.load()
}

func (s *Store) load() LoadResult {
	var res LoadResult

	data, err := s.fs.Read(s.file)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			res.Corrupt = true
		}
		return res
	}
	res.Found = true

	entries, recovered, err := Decode(data)
	if err != nil {
		res.Corrupt = true
		return res
	}
	s.entries = entries
	res.RecoveredTimestamps = recovered
	return res
}

// Append inserts a new entry and attempts to persist the whole journal.
// The zero time means "now". The returned error is the persistence
// status only: the entry is always retained in memory.
func (s *Store) Append(content string, at time.Time) error {
	if strings.TrimSpace(content) == "" {
		return apperr.ErrEmptyContent
	}
	if at.IsZero() {
		at = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, models.JournalEntry{Date: at, Content: content})
	s.saveErr = s.saveLocked()
	return s.saveErr
}

// Save rewrites the backing file from the in-memory sequence.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = s.saveLocked()
	return s.saveErr
}

func (s *Store) saveLocked() error {
	recs := make([]record, len(s.entries))
	for i, e := range s.entries {
		recs[i] = record{Date: e.Date.Format(time.RFC3339), Content: e.Content}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	return s.fs.Write(s.file, data)
}

// Entries returns a copy of the journal in append order. Callers may
// sort or group the result freely.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// GroupedByDay returns entries grouped by calendar date, chronological
// within each day. Groups are ordered newest-day-first when newestFirst
// is set, oldest-first otherwise.
func (s *Store) GroupedByDay(newestFirst bool) []models.DayGroup {
	entries := s.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	byDay := make(map[string][]models.JournalEntry)
	var days []string
	for _, e := range entries {
		day := e.Day()
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], e)
	}
	sort.Strings(days)
	if newestFirst {
		for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
			days[i], days[j] = days[j], days[i]
		}
	}

	out := make([]models.DayGroup, 0, len(days))
	for _, day := range days {
		out = append(out, models.DayGroup{Day: day, Entries: byDay[day]})
	}
	return out
}

// File returns the backing file name, relative to the journal directory.
func (s *Store) File() string {
	return s.file
}

// Degraded reports whether the most recent persistence attempt failed.
// A degraded store keeps serving the in-memory journal.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr != nil
}
