package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/minebloom/bloom/internal/apperr"
	"github.com/minebloom/bloom/internal/companion"
	"github.com/minebloom/bloom/internal/journal"
)

// Handler holds API route handlers.
type Handler struct {
	svc *companion.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *companion.Service) *Handler {
	return &Handler{svc: svc}
}

// Login handles POST /api/session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	view, err := h.svc.Login(r.Context(), req.DisplayName, req.PartnerName)
	if err != nil {
		if errors.Is(err, apperr.ErrEmptyName) {
			writeJSON(w, http.StatusBadRequest, errorBody("display_name is required"))
			return
		}
		slog.Error("login failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetSession handles GET /api/session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.CurrentSession(r.Context())
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("no active session"))
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Unlock handles POST /api/journal/unlock. A wrong secret is a normal
// 200 with unlocked=false; the caller decides the user-facing messaging.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	ok, err := h.svc.CheckSecret(r.Context(), req.Secret)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		return
	}
	writeJSON(w, http.StatusOK, UnlockResponse{Unlocked: ok})
}

// AppendEntry handles POST /api/journal/entries.
func (h *Handler) AppendEntry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AppendEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	at, err := journal.ParseWhen(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unrecognized date"))
		return
	}
	entry, err := h.svc.AppendEntry(r.Context(), req.Content, at)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrEmptyContent):
			writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		case errors.Is(err, apperr.ErrNoSession):
			writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		default:
			slog.Error("append entry failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Timeline handles GET /api/journal/entries.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	newestFirst := r.URL.Query().Get("sort") != "oldest"
	groups, err := h.svc.Timeline(r.Context(), newestFirst)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days": groups,
	})
}

// Search handles GET /api/journal/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.SearchJournal(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, apperr.ErrNoSession) {
			writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
			return
		}
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
	})
}

// DailyAffirmation handles GET /api/affirmations/daily.
func (h *Handler) DailyAffirmation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"text": h.svc.DailyAffirmation()})
}

// RandomAffirmation handles GET /api/affirmations/random.
func (h *Handler) RandomAffirmation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"text": h.svc.RandomAffirmation()})
}

// SaveAffirmation handles POST /api/affirmations/saved.
func (h *Handler) SaveAffirmation(w http.ResponseWriter, r *http.Request) {
	var req SaveAffirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("text is required"))
		return
	}
	h.svc.SaveAffirmation(req.Text)
	w.WriteHeader(http.StatusCreated)
}

// Mood handles POST /api/mood.
func (h *Handler) Mood(w http.ResponseWriter, r *http.Request) {
	var req MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	at, err := journal.ParseWhen(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unrecognized date"))
		return
	}
	ack, err := h.svc.RecordMood(r.Context(), req.Score, req.Note, at)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidAnswers):
			writeJSON(w, http.StatusBadRequest, errorBody("score out of range"))
		case errors.Is(err, apperr.ErrNoSession):
			writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		default:
			slog.Error("mood check-in failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, ack)
}

// Actions handles GET /api/actions.
func (h *Handler) Actions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"actions": h.svc.RecentActions(),
	})
}

// PopAction handles POST /api/actions/pop. An empty stack is the
// distinguished empty signal (404), not an error.
func (h *Handler) PopAction(w http.ResponseWriter, _ *http.Request) {
	a, ok := h.svc.UndoRecent()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("no recent actions"))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// RedFlagQuestions handles GET /api/checks/redflag/questions.
func (h *Handler) RedFlagQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.RedFlagQuestions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": qs})
}

// RedFlagCheck handles POST /api/checks/redflag.
func (h *Handler) RedFlagCheck(w http.ResponseWriter, r *http.Request) {
	var req RedFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	res, err := h.svc.RedFlagCheck(r.Context(), req.Answers)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("expected one answer per checklist item"))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RelationshipQuestions handles GET /api/scans/relationship/questions.
func (h *Handler) RelationshipQuestions(w http.ResponseWriter, r *http.Request) {
	batch, _ := strconv.Atoi(r.URL.Query().Get("batch"))
	qs, err := h.svc.RelationshipQuestions(r.Context(), batch)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNoSession):
			writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("batch out of range"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"batch": batch, "questions": qs})
}

// SubmitRelationshipBatch handles POST /api/scans/relationship.
func (h *Handler) SubmitRelationshipBatch(w http.ResponseWriter, r *http.Request) {
	var req ScanSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	ack, err := h.svc.SubmitRelationshipBatch(r.Context(), req.Batch, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNoSession):
			writeJSON(w, http.StatusUnauthorized, errorBody("no active session"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("batch out of range"))
		case errors.Is(err, apperr.ErrInvalidAnswers):
			writeJSON(w, http.StatusBadRequest, errorBody("expected one answer per question"))
		default:
			slog.Error("scan submit failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, ack)
}
