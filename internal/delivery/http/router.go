package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	verifier domain.TokenVerifier,
	logger *slog.Logger,
	profileController *controllers.ProfileController,
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
	speakerController *controllers.SpeakerController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Profile
	mux.HandleFunc("GET /profile", auth(profileController.GetProfile))
	mux.HandleFunc("POST /profile", auth(profileController.SaveProfile))

	// Conferences
	mux.HandleFunc("POST /conferences", auth(conferenceController.CreateConference))
	mux.HandleFunc("GET /conferences/created", auth(conferenceController.ListCreatedConferences))
	mux.HandleFunc("POST /conferences/query", auth(conferenceController.QueryConferences))
	mux.HandleFunc("GET /conferences/attending", auth(conferenceController.ListAttendingConferences))
	mux.HandleFunc("GET /conferences/announcement", auth(conferenceController.GetAnnouncement))
	mux.HandleFunc("GET /conferences/{conferenceID}", auth(conferenceController.GetConference))
	mux.HandleFunc("POST /conferences/{conferenceID}/registration", auth(conferenceController.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registration", auth(conferenceController.Unregister))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(sessionController.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", auth(sessionController.ListConferenceSessions))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/type/{type}", auth(sessionController.ListConferenceSessionsByType))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/ordered", auth(sessionController.ListConferenceSessionsOrdered))
	mux.HandleFunc("GET /sessions/speaker", auth(sessionController.ListSessionsBySpeaker))
	mux.HandleFunc("GET /sessions/city", auth(sessionController.ListSessionsByCity))
	mux.HandleFunc("GET /sessions/early-non-workshop", auth(sessionController.ListEarlyNonWorkshopSessions))
	mux.HandleFunc("GET /sessions/featured-speaker", auth(sessionController.GetFeaturedSpeaker))

	// Wishlist
	mux.HandleFunc("GET /sessions/wishlist", auth(sessionController.ListWishlist))
	mux.HandleFunc("POST /sessions/{sessionID}/wishlist", auth(sessionController.AddToWishlist))
	mux.HandleFunc("DELETE /sessions/{sessionID}/wishlist", auth(sessionController.RemoveFromWishlist))

	// Speakers
	mux.HandleFunc("POST /speakers", auth(speakerController.CreateSpeaker))
	mux.HandleFunc("GET /speakers", auth(speakerController.ListSpeakers))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
