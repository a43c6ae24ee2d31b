package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// SaveProfileRequest is the request body for POST /profile. Both fields are
// optional; empty display_name keeps the current value.
type SaveProfileRequest struct {
	DisplayName  string `json:"display_name"`
	TeeShirtSize string `json:"tee_shirt_size"`
}

// Validate implements Validator.
func (s SaveProfileRequest) Validate() []string {
	var errs []string
	if s.TeeShirtSize != "" && !domain.TeeShirtSize(s.TeeShirtSize).Valid() {
		errs = append(errs, "tee_shirt_size must be one of the known sizes")
	}
	return errs
}

// ProfileSuccessResponse is the success response envelope for GET and POST /profile.
type ProfileSuccessResponse struct {
	Data  *domain.Profile   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the authenticated user's profile. A profile is created from the token claims on first access.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	profile, err := c.Service.Get(r.Context(), identity)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Update the caller's profile
// @Description Updates display name and tee shirt size. Omitted or empty display_name keeps the stored value; tee_shirt_size must be a known size.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveProfileRequest true "Profile fields to update"
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the updated profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [post]
func (c *ProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req SaveProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	profile, err := c.Service.Save(r.Context(), identity, &domain.SaveProfileInput{
		DisplayName:  req.DisplayName,
		TeeShirtSize: domain.TeeShirtSize(req.TeeShirtSize),
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
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}
