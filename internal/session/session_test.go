package session

import (
	"errors"
	"testing"
	"time"

	"github.com/minebloom/bloom/internal/apperr"
	"github.com/minebloom/bloom/internal/storage"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	fs, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return NewManager(fs, "")
}

func TestLoginEmptyName(t *testing.T) {
	m := testManager(t)
	for _, name := range []string{"", "   "} {
		if _, err := m.Login(name, ""); !errors.Is(err, apperr.ErrEmptyName) {
			t.Errorf("Login(%q) err = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestNoActiveSessionBeforeLogin(t *testing.T) {
	m := testManager(t)
	if _, err := m.Active(); !errors.Is(err, apperr.ErrNoSession) {
		t.Errorf("Active err = %v, want ErrNoSession", err)
	}
}

func TestSecretDefaultsToPartnerName(t *testing.T) {
	m := testManager(t)
	s, err := m.Login("Mia", "Alex")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.CheckSecret("Alex") {
		t.Error("partner name should unlock")
	}
	if s.CheckSecret("alex") {
		t.Error("secret comparison must be case-sensitive")
	}
	if s.CheckSecret("") {
		t.Error("empty candidate must not unlock")
	}
}

func TestSecretFallsBackWithoutPartner(t *testing.T) {
	m := testManager(t)
	s, err := m.Login("Mia", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.CheckSecret(DefaultFallbackSecret) {
		t.Error("fallback secret should unlock")
	}
}

func TestConfiguredFallbackSecret(t *testing.T) {
	fs, _ := storage.NewFS(t.TempDir())
	m := NewManager(fs, "opensesame")
	s, _ := m.Login("Mia", "")
	if !s.CheckSecret("opensesame") {
		t.Error("configured fallback should unlock")
	}
	if s.CheckSecret(DefaultFallbackSecret) {
		t.Error("default fallback must not unlock when overridden")
	}
}

func TestSetSecret(t *testing.T) {
	m := testManager(t)
	s, _ := m.Login("Mia", "Alex")
	s.SetSecret("new")
	if s.CheckSecret("Alex") {
		t.Error("old secret still unlocks")
	}
	if !s.CheckSecret("new") {
		t.Error("new secret does not unlock")
	}
}

func TestLoginReplacesActive(t *testing.T) {
	m := testManager(t)
	first, _ := m.Login("Mia", "")
	second, _ := m.Login("Noor", "")

	active, err := m.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active.ID() != second.ID() {
		t.Error("active session is not the latest login")
	}
	if first.ID() == second.ID() {
		t.Error("session IDs must be unique")
	}
}

func TestLoginTrimsNames(t *testing.T) {
	m := testManager(t)
	s, err := m.Login("  Mia ", "  Alex ")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.DisplayName() != "Mia" || s.PartnerName() != "Alex" {
		t.Errorf("names = %q, %q", s.DisplayName(), s.PartnerName())
	}
}

func TestLoginReloadsPersistedJournal(t *testing.T) {
	fs, _ := storage.NewFS(t.TempDir())
	m := NewManager(fs, "")

	s1, _ := m.Login("Mia", "")
	if err := s1.Store().Append("persisted entry", time.Now()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// A later login with the same name sees the same journal.
	s2, _ := m.Login("Mia", "")
	if !s2.LoadResult().Found {
		t.Error("journal file not found on relogin")
	}
	if s2.Store().Len() != 1 {
		t.Errorf("len = %d, want 1", s2.Store().Len())
	}
}
