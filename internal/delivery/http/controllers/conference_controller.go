package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateConferenceRequest is the request body for POST /conferences. Only name
// is required; city and topics fall back to defaults when omitted.
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	return errs
}

// ConferenceSuccessResponse is the success response envelope for single-conference endpoints.
type ConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListConferencesSuccessResponse is the success response envelope for conference list endpoints.
type ListConferencesSuccessResponse struct {
	Data  []*domain.Conference `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// QueryConferencesRequest is the request body for POST /conferences/query.
type QueryConferencesRequest struct {
	Filters []domain.QueryFilter `json:"filters"`
}

// AnnouncementResponse is the data payload for GET /conferences/announcement.
type AnnouncementResponse struct {
	Announcement string `json:"announcement"`
}

// AnnouncementSuccessResponse is the success response envelope for GET /conferences/announcement (200).
type AnnouncementSuccessResponse struct {
	Data  AnnouncementResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationResponse is the data payload for registration and wishlist mutations.
// Applied is false when the request was a no-op (e.g. removing an absent entry).
type RegistrationResponse struct {
	Applied bool `json:"applied"`
}

// RegistrationSuccessResponse is the success response envelope for registration endpoints.
type RegistrationSuccessResponse struct {
	Data  RegistrationResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type ConferenceController struct {
	Logger        *slog.Logger
	Service       domain.ConferenceService
	Registrations domain.RegistrationService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService, reg domain.RegistrationService) *ConferenceController {
	return &ConferenceController{
		Logger:        logger,
		Service:       svc,
		Registrations: reg,
	}
}

// CreateConference godoc
// @Summary Create a conference
// @Description Create a conference. Name is required; city and topics default when omitted, month is derived from start_date, and seats_available starts at max_attendees. The authenticated user becomes the organizer and receives a confirmation email.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conference body CreateConferenceRequest true "Conference data"
// @Success 201 {object} controllers.ConferenceSuccessResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conference, err := c.Service.Create(r.Context(), identity, &domain.CreateConferenceInput{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conference)
}

// GetConference godoc
// @Summary Get a conference by ID
// @Description Returns the conference with its organizer display name. Requires authentication.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.ConferenceSuccessResponse "data contains the conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	conference, err := c.Service.GetByID(r.Context(), conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conference)
}

// ListCreatedConferences godoc
// @Summary List conferences organized by the caller
// @Description Returns conferences where the authenticated user is the organizer.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/created [get]
func (c *ConferenceController) ListCreatedConferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferences, err := c.Service.ListCreated(r.Context(), identity)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if conferences == nil {
		conferences = []*domain.Conference{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// QueryConferences godoc
// @Summary Query conferences with filters
// @Description Returns conferences matching all given filters. Fields: CITY, TOPIC, MONTH, MAX_ATTENDEES. Operators: EQ, GT, GTEQ, LT, LTEQ, NE. At most one field may use an inequality operator.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QueryConferencesRequest true "Filters (may be empty for all conferences)"
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data is an array of conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown field or operator, or multiple inequality fields)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/query [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conferences, err := c.Service.Query(r.Context(), req.Filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if conferences == nil {
		conferences = []*domain.Conference{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// ListAttendingConferences godoc
// @Summary List conferences the caller attends
// @Description Returns the conferences the authenticated user is registered for.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *ConferenceController) ListAttendingConferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferences, err := c.Service.ListAttending(r.Context(), identity)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if conferences == nil {
		conferences = []*domain.Conference{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// GetAnnouncement godoc
// @Summary Get the current announcement
// @Description Returns the cached announcement about nearly sold out conferences. Empty string when none is set. Never touches the database.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.AnnouncementSuccessResponse "data contains the announcement, possibly empty"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/announcement [get]
func (c *ConferenceController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := c.Service.Announcement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Announcement: announcement})
}

// Register godoc
// @Summary Register for a conference
// @Description Registers the authenticated user for the conference and decrements the seat count. Seat updates are transactional, so concurrent registrations never oversell.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains applied=true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or no seats)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [post]
func (c *ConferenceController) Register(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	applied, err := c.Registrations.Register(r.Context(), identity, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrNoSeatsAvailable) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Applied: applied})
}

// Unregister godoc
// @Summary Unregister from a conference
// @Description Removes the authenticated user's registration and returns the seat. Returns applied=false when the user was not registered.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains applied"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [delete]
func (c *ConferenceController) Unregister(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	applied, err := c.Registrations.Unregister(r.Context(), identity, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Applied: applied})
}
