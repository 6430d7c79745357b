package api

import (
	"github.com/minebloom/bloom/internal/companion"
)

// LoginRequest is the request body for creating a session.
type LoginRequest struct {
	DisplayName string `json:"display_name"`
	PartnerName string `json:"partner_name,omitempty"`
}

// UnlockRequest is the request body for checking the journal secret.
type UnlockRequest struct {
	Secret string `json:"secret"`
}

// UnlockResponse reports the outcome of a secret check.
type UnlockResponse struct {
	Unlocked bool `json:"unlocked"`
}

// AppendEntryRequest is the request body for appending a journal entry.
// Date accepts RFC 3339 or a date-only value (normalized to midnight);
// empty means now.
type AppendEntryRequest struct {
	Content string `json:"content"`
	Date    string `json:"date,omitempty"`
}

// MoodRequest is the request body for a mood check-in.
type MoodRequest struct {
	Score int    `json:"score"`
	Note  string `json:"note,omitempty"`
	Date  string `json:"date,omitempty"`
}

// SaveAffirmationRequest is the request body for saving an affirmation to
// the gallery (recent-action stack).
type SaveAffirmationRequest struct {
	Text string `json:"text"`
}

// RedFlagRequest is the request body for the 5-item red-flag check.
type RedFlagRequest struct {
	Answers []bool `json:"answers"`
}

// ScanSubmitRequest is the request body for one answered relationship-scan
// batch.
type ScanSubmitRequest struct {
	Batch   int    `json:"batch"`
	Answers []bool `json:"answers"`
}

// SessionView is the session response type (aliased from the domain layer).
type SessionView = companion.SessionView

// EntryView is the appended-entry response type (aliased from the domain layer).
type EntryView = companion.EntryView

// MoodAck is the mood check-in response type (aliased from the domain layer).
type MoodAck = companion.MoodAck

// ScanAck is the relationship-scan response type (aliased from the domain layer).
type ScanAck = companion.ScanAck
