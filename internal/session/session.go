// Package session binds one logged-in identity to its journal store and
// journal secret.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minebloom/bloom/internal/apperr"
	"github.com/minebloom/bloom/internal/journal"
	"github.com/minebloom/bloom/internal/storage"
)

// DefaultFallbackSecret gates the journal when no partner name was given
// at login. The secret is a memorable name, not a security boundary.
const DefaultFallbackSecret = "mine123"

// Session is the runtime binding of one logged-in identity to its entry
// store. Identity fields are immutable after construction; the secret may
// be changed.
type Session struct {
	id          string
	displayName string
	partnerName string
	createdAt   time.Time
	store       *journal.Store
	loadResult  journal.LoadResult

	mu     sync.Mutex
	secret string
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// DisplayName returns the user's display name.
func (s *Session) DisplayName() string { return s.displayName }

// PartnerName returns the optional partner name ("" when absent).
func (s *Session) PartnerName() string { return s.partnerName }

// CreatedAt returns the login time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Store returns the session's entry store.
func (s *Session) Store() *journal.Store { return s.store }

// LoadResult reports how the journal load at login went.
func (s *Session) LoadResult() journal.LoadResult { return s.loadResult }

// SetSecret replaces the journal secret.
func (s *Session) SetSecret(secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = secret
}

// CheckSecret reports whether candidate exactly matches the stored
// secret. Comparison is case-sensitive; there is no hashing.
func (s *Session) CheckSecret(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidate == s.secret
}

// Manager owns the single active session.
type Manager struct {
	fs             storage.Provider
	fallbackSecret string

	mu     sync.Mutex
	active *Session
}

// NewManager creates a session manager. fallbackSecret gates the journal
// for logins without a partner name; empty means DefaultFallbackSecret.
func NewManager(fs storage.Provider, fallbackSecret string) *Manager {
	if fallbackSecret == "" {
		fallbackSecret = DefaultFallbackSecret
	}
	return &Manager{fs: fs, fallbackSecret: fallbackSecret}
}

// Login creates a session for the given identity, loading any previously
// persisted journal. The journal secret defaults to the partner name when
// supplied, else the fallback secret. A new login replaces the active
// session; the prior store is discarded, its file stays on disk.
func (m *Manager) Login(displayName, partnerName string) (*Session, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, apperr.ErrEmptyName
	}
	partnerName = strings.TrimSpace(partnerName)

	store, res := journal.Open(m.fs, displayName)
	secret := partnerName
	if secret == "" {
		secret = m.fallbackSecret
	}

	s := &Session{
		id:          uuid.NewString(),
		displayName: displayName,
		partnerName: partnerName,
		createdAt:   time.Now(),
		store:       store,
		loadResult:  res,
		secret:      secret,
	}

	m.mu.Lock()
	m.active = s
	m.mu.Unlock()
	return s, nil
}

// Active returns the current session, or apperr.ErrNoSession before the
// first login.
func (m *Manager) Active() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, apperr.ErrNoSession
	}
	return m.active, nil
}
