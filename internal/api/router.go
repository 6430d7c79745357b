package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minebloom/bloom/internal/companion"
)

// NewRouter creates a chi router with all API routes mounted.
// Journal routes are gated behind the session's journal secret; unlock,
// session, affirmation, mood, action, and questionnaire routes are open.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *companion.Service, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	// Session lifecycle.
	r.Post("/session", h.Login)
	r.Get("/session", h.GetSession)

	// Journal: unlock is open, everything else requires the secret.
	r.Route("/journal", func(r chi.Router) {
		r.Post("/unlock", h.Unlock)

		r.Group(func(r chi.Router) {
			r.Use(SecretMiddleware(svc))
			r.Post("/entries", h.AppendEntry)
			r.Get("/entries", h.Timeline)
			r.Get("/search", h.Search)
		})
	})

	// Affirmations.
	r.Get("/affirmations/daily", h.DailyAffirmation)
	r.Get("/affirmations/random", h.RandomAffirmation)
	r.Post("/affirmations/saved", h.SaveAffirmation)

	// Mood check-ins.
	r.Post("/mood", h.Mood)

	// Recent-action stack.
	r.Get("/actions", h.Actions)
	r.Post("/actions/pop", h.PopAction)

	// Red-flag check.
	r.Get("/checks/redflag/questions", h.RedFlagQuestions)
	r.Post("/checks/redflag", h.RedFlagCheck)

	// Relationship scan.
	r.Get("/scans/relationship/questions", h.RelationshipQuestions)
	r.Post("/scans/relationship", h.SubmitRelationshipBatch)

	// SSE endpoint.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
