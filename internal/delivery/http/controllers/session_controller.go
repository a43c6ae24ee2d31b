package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name          string `json:"name"`
	Highlights    string `json:"highlights"`
	Speaker       string `json:"speaker"`
	Duration      int    `json:"duration"`
	TypeOfSession string `json:"type_of_session"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Duration < 0 {
		errs = append(errs, "duration must be non-negative")
	}
	if c.TypeOfSession != "" && !domain.SessionType(c.TypeOfSession).Valid() {
		errs = append(errs, "type_of_session must be one of NOT_SPECIFIED, WORKSHOP, LECTURE, KEYNOTE")
	}
	return errs
}

// SessionSuccessResponse is the success response envelope for single-session endpoints.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessionsSuccessResponse is the success response envelope for session list endpoints.
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FeaturedSpeakerResponse is the data payload for GET /sessions/featured-speaker.
type FeaturedSpeakerResponse struct {
	FeaturedSpeaker string `json:"featured_speaker"`
}

// FeaturedSpeakerSuccessResponse is the success response envelope for GET /sessions/featured-speaker (200).
type FeaturedSpeakerSuccessResponse struct {
	Data  FeaturedSpeakerResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type SessionController struct {
	Logger   *slog.Logger
	Service  domain.SessionService
	Wishlist domain.WishlistService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService, wishlist domain.WishlistService) *SessionController {
	return &SessionController{
		Logger:   logger,
		Service:  svc,
		Wishlist: wishlist,
	}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Create a session. Only the conference organizer may create sessions. Type defaults to NOT_SPECIFIED; start_time is HH:MM. A speaker becoming featured is detected asynchronously.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, err := c.Service.Create(r.Context(), identity, conferenceID, &domain.CreateSessionInput{
		Name:          req.Name,
		Highlights:    req.Highlights,
		Speaker:       req.Speaker,
		Duration:      req.Duration,
		TypeOfSession: domain.SessionType(req.TypeOfSession),
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only the organizer can add sessions")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// ListConferenceSessions godoc
// @Summary List sessions of a conference
// @Description Returns all sessions of the conference.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListConferenceSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	sessions, err := c.Service.ListByConference(r.Context(), conferenceID)
	c.writeSessionList(w, r, sessions, err)
}

// ListConferenceSessionsByType godoc
// @Summary List sessions of a conference by type
// @Description Returns sessions of the conference with the given type (WORKSHOP, LECTURE, KEYNOTE, NOT_SPECIFIED).
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param type path string true "Session type"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown type)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/type/{type} [get]
func (c *SessionController) ListConferenceSessionsByType(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	sessionType := domain.SessionType(r.PathValue("type"))
	sessions, err := c.Service.ListByConferenceAndType(r.Context(), conferenceID, sessionType)
	c.writeSessionList(w, r, sessions, err)
}

// ListConferenceSessionsOrdered godoc
// @Summary List sessions of a conference in chronological order
// @Description Returns sessions of the conference ordered by date, then start time. Sessions without a date or time sort last.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/ordered [get]
func (c *SessionController) ListConferenceSessionsOrdered(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	sessions, err := c.Service.ListByConferenceOrdered(r.Context(), conferenceID)
	c.writeSessionList(w, r, sessions, err)
}

// ListSessionsBySpeaker godoc
// @Summary List sessions by speaker across conferences
// @Description Returns all sessions with the given speaker, regardless of conference.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param speaker query string true "Speaker name"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/speaker [get]
func (c *SessionController) ListSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speaker := strings.TrimSpace(r.URL.Query().Get("speaker"))
	if speaker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speaker")
		return
	}
	sessions, err := c.Service.ListBySpeaker(r.Context(), speaker)
	c.writeSessionList(w, r, sessions, err)
}

// ListSessionsByCity godoc
// @Summary List sessions by conference city
// @Description Returns sessions of all conferences held in the given city.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param city query string true "Conference city"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/city [get]
func (c *SessionController) ListSessionsByCity(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing city")
		return
	}
	sessions, err := c.Service.ListByCity(r.Context(), city)
	c.writeSessionList(w, r, sessions, err)
}

// ListEarlyNonWorkshopSessions godoc
// @Summary List non-workshop sessions before 7pm
// @Description Returns sessions that are not workshops and start before 19:00. Sessions without a start time are excluded.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/early-non-workshop [get]
func (c *SessionController) ListEarlyNonWorkshopSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListEarlyNonWorkshop(r.Context())
	c.writeSessionList(w, r, sessions, err)
}

// GetFeaturedSpeaker godoc
// @Summary Get the current featured speaker announcement
// @Description Returns the cached featured speaker message. Empty string when none is set. Never touches the database.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.FeaturedSpeakerSuccessResponse "data contains the message, possibly empty"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/featured-speaker [get]
func (c *SessionController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.FeaturedSpeaker(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FeaturedSpeakerResponse{FeaturedSpeaker: message})
}

// AddToWishlist godoc
// @Summary Add a session to the caller's wishlist
// @Description Puts the session on the authenticated user's wishlist.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains applied=true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already in wishlist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/wishlist [post]
func (c *SessionController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if !uuidRegex.MatchString(sessionID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid sessionID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	applied, err := c.Wishlist.Add(r.Context(), identity, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyInWishlist) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Applied: applied})
}

// RemoveFromWishlist godoc
// @Summary Remove a session from the caller's wishlist
// @Description Takes the session off the authenticated user's wishlist. Returns applied=false when the session was not on it.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains applied"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/wishlist [delete]
func (c *SessionController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if !uuidRegex.MatchString(sessionID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid sessionID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	applied, err := c.Wishlist.Remove(r.Context(), identity, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Applied: applied})
}

// ListWishlist godoc
// @Summary List the caller's wishlisted sessions
// @Description Returns the sessions on the authenticated user's wishlist, across all conferences.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/wishlist [get]
func (c *SessionController) ListWishlist(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Wishlist.ListSessions(r.Context(), identity)
	c.writeSessionList(w, r, sessions, err)
}

// writeSessionList writes a session list or maps the error to a response.
func (c *SessionController) writeSessionList(w http.ResponseWriter, r *http.Request, sessions []*domain.Session, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}
