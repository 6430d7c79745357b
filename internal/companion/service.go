// Package companion coordinates sessions, journal persistence, indexing,
// affirmations, mood check-ins, and questionnaire scoring behind the
// presentation boundary.
package companion

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/minebloom/bloom/internal/affirmation"
	"github.com/minebloom/bloom/internal/apperr"
	"github.com/minebloom/bloom/internal/index"
	"github.com/minebloom/bloom/internal/journal"
	"github.com/minebloom/bloom/internal/models"
	"github.com/minebloom/bloom/internal/mood"
	"github.com/minebloom/bloom/internal/scan"
	"github.com/minebloom/bloom/internal/session"
	"github.com/minebloom/bloom/internal/stack"
	"github.com/minebloom/bloom/internal/storage"
)

// EventCallback is notified after a journal mutation so the presentation
// layer can refresh (kind is "updated").
type EventCallback func(kind, path string)

// SessionView is the presentation-facing shape of the active session.
type SessionView struct {
	ID          string             `json:"id"`
	DisplayName string             `json:"display_name"`
	PartnerName string             `json:"partner_name,omitempty"`
	JournalFile string             `json:"journal_file"`
	Entries     int                `json:"entries"`
	CreatedAt   time.Time          `json:"created_at"`
	Load        journal.LoadResult `json:"load"`
}

// EntryView is the presentation-facing shape of one appended entry.
// Persisted reflects the best-effort save: false means the entry lives in
// memory only for this process.
type EntryView struct {
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	Persisted bool      `json:"persisted"`
}

// MoodAck acknowledges a mood check-in with the tiered supportive message
// and an extra affirmation.
type MoodAck struct {
	Message     string `json:"message"`
	Affirmation string `json:"affirmation"`
	Persisted   bool   `json:"persisted"`
}

// ScanAck acknowledges a completed relationship-scan batch.
type ScanAck struct {
	Score     int  `json:"score"`
	Total     int  `json:"total"`
	NextBatch int  `json:"next_batch"` // -1 when the scan is finished
	Persisted bool `json:"persisted"`
}

// Service is the companion core exposed to the API and MCP layers.
type Service struct {
	sessions *session.Manager
	store    storage.Provider
	db       *index.DB
	daily    affirmation.Provider
	random   affirmation.Provider
	recent   *stack.Stack
	logger   *slog.Logger
	events   EventCallback
}

// NewService creates the companion service. cb may be nil.
func NewService(sessions *session.Manager, store storage.Provider, db *index.DB,
	daily, random affirmation.Provider, recent *stack.Stack,
	logger *slog.Logger, cb EventCallback) *Service {
	return &Service{
		sessions: sessions,
		store:    store,
		db:       db,
		daily:    daily,
		random:   random,
		recent:   recent,
		logger:   logger,
		events:   cb,
	}
}

// Login creates the active session and brings the index up to date for
// its journal file.
func (s *Service) Login(_ context.Context, displayName, partnerName string) (SessionView, error) {
	sess, err := s.sessions.Login(displayName, partnerName)
	if err != nil {
		return SessionView{}, err
	}
	res := sess.LoadResult()
	if res.Corrupt {
		s.logger.Warn("journal file unreadable, starting empty",
			slog.String("file", sess.Store().File()))
	}
	s.reindex(sess)
	return s.view(sess), nil
}

// CurrentSession returns the active session view.
func (s *Service) CurrentSession(_ context.Context) (SessionView, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return SessionView{}, err
	}
	return s.view(sess), nil
}

// CheckSecret reports whether candidate matches the active session's
// journal secret.
func (s *Service) CheckSecret(_ context.Context, candidate string) (bool, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return false, err
	}
	return sess.CheckSecret(candidate), nil
}

// AppendEntry appends free-text to the active journal. The zero time
// means "now"; date-only values arrive already normalized to midnight by
// journal.ParseWhen. A failed save degrades the store but never loses the
// in-memory entry.
func (s *Service) AppendEntry(_ context.Context, content string, at time.Time) (EntryView, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return EntryView{}, err
	}
	saveErr := sess.Store().Append(content, at)
	if errors.Is(saveErr, apperr.ErrEmptyContent) {
		return EntryView{}, saveErr
	}
	return s.afterAppend(sess, saveErr), nil
}

// Timeline returns the journal grouped by calendar day. Mood entries have
// their numeric score annotation stripped for display.
func (s *Service) Timeline(_ context.Context, newestFirst bool) ([]models.DayGroup, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	groups := sess.Store().GroupedByDay(newestFirst)
	for gi := range groups {
		for ei := range groups[gi].Entries {
			groups[gi].Entries[ei].Content = mood.DisplayContent(groups[gi].Entries[ei].Content)
		}
	}
	return groups, nil
}

// SearchJournal runs a full-text search over the active journal's indexed
// entries.
func (s *Service) SearchJournal(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.db.Search(sess.Store().File(), query, limit)
}

// DailyAffirmation returns today's deterministic affirmation.
func (s *Service) DailyAffirmation() string {
	return s.daily.Affirmation()
}

// RandomAffirmation returns a uniformly random affirmation.
func (s *Service) RandomAffirmation() string {
	return s.random.Affirmation()
}

// SaveAffirmation pushes an affirmation onto the recent-action stack (the
// "gallery"). The stack is advisory only and not persisted.
func (s *Service) SaveAffirmation(text string) {
	s.recent.Push(stack.Action{
		Kind: stack.KindAffirmation,
		At:   time.Now(),
		Data: map[string]any{"text": text},
	})
}

// RecordMood records a mood check-in: the action is pushed onto the
// recent-action stack and the check-in is appended to the journal.
func (s *Service) RecordMood(_ context.Context, score int, note string, at time.Time) (MoodAck, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return MoodAck{}, err
	}
	content, err := mood.Content(score, note)
	if err != nil {
		return MoodAck{}, err
	}
	if at.IsZero() {
		at = time.Now()
	}

	s.recent.Push(stack.Action{
		Kind: stack.KindMood,
		At:   at,
		Data: map[string]any{"score": score, "note": note},
	})

	saveErr := sess.Store().Append(content, at)
	s.afterAppend(sess, saveErr)

	return MoodAck{
		Message:     mood.Response(score),
		Affirmation: s.daily.Affirmation(),
		Persisted:   saveErr == nil,
	}, nil
}

// RecentActions returns the recent-action stack, most recent first.
func (s *Service) RecentActions() []stack.Action {
	return s.recent.All()
}

// UndoRecent pops the most recent action; ok is false when the stack is
// empty.
func (s *Service) UndoRecent() (stack.Action, bool) {
	return s.recent.Pop()
}

// RedFlagQuestions returns the red-flag checklist with the active
// session's partner name substituted in.
func (s *Service) RedFlagQuestions(_ context.Context) ([]string, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return scan.RedFlagQuestions(sess.PartnerName()), nil
}

// RedFlagCheck scores a completed red-flag checklist.
func (s *Service) RedFlagCheck(_ context.Context, answers []bool) (scan.RedFlagResult, error) {
	return scan.ScoreRedFlags(answers)
}

// RelationshipQuestions returns one batch of relationship-scan questions.
func (s *Service) RelationshipQuestions(_ context.Context, batch int) ([]string, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return scan.Questions(batch, sess.PartnerName())
}

// SubmitRelationshipBatch scores one answered batch and appends its
// summary to the journal.
func (s *Service) SubmitRelationshipBatch(_ context.Context, batch int, answers []bool) (ScanAck, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return ScanAck{}, err
	}
	questions, err := scan.Questions(batch, sess.PartnerName())
	if err != nil {
		return ScanAck{}, err
	}
	score, err := scan.ScoreBatch(answers)
	if err != nil {
		return ScanAck{}, err
	}

	summary := scan.BatchSummary(questions, answers, score)
	saveErr := sess.Store().Append(summary, time.Now())
	s.afterAppend(sess, saveErr)

	next := batch + 1
	if next >= scan.Batches() {
		next = -1
	}
	return ScanAck{
		Score:     score,
		Total:     len(answers),
		NextBatch: next,
		Persisted: saveErr == nil,
	}, nil
}

// view builds the presentation shape of a session.
func (s *Service) view(sess *session.Session) SessionView {
	return SessionView{
		ID:          sess.ID(),
		DisplayName: sess.DisplayName(),
		PartnerName: sess.PartnerName(),
		JournalFile: sess.Store().File(),
		Entries:     sess.Store().Len(),
		CreatedAt:   sess.CreatedAt(),
		Load:        sess.LoadResult(),
	}
}

// afterAppend reindexes the session's journal and notifies the
// presentation layer. saveErr is the best-effort persistence status of
// the append that just happened.
func (s *Service) afterAppend(sess *session.Session, saveErr error) EntryView {
	if saveErr != nil {
		s.logger.Warn("journal save failed, in-memory copy retained",
			slog.String("file", sess.Store().File()),
			slog.String("error", saveErr.Error()))
	}
	s.reindex(sess)
	if s.events != nil {
		s.events("updated", sess.Store().File())
	}
	entries := sess.Store().Entries()
	last := entries[len(entries)-1]
	return EntryView{Date: last.Date, Content: last.Content, Persisted: saveErr == nil}
}

// reindex replaces the index rows for the session's journal from the
// in-memory sequence, which stays authoritative even when the file write
// failed. The checksum is left empty so the next file-level sync rereads
// the file and records the real one.
func (s *Service) reindex(sess *session.Session) {
	if err := s.db.ReplaceJournal(sess.Store().File(), "", sess.Store().Entries()); err != nil {
		s.logger.Warn("index update failed",
			slog.String("file", sess.Store().File()),
			slog.String("error", err.Error()))
	}
}
