package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/services"
)

// CreateSpeakerRequest is the request body for POST /speakers.
type CreateSpeakerRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
}

// Validate implements Validator.
func (c CreateSpeakerRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// SpeakerSuccessResponse is the success response envelope for POST /speakers (201).
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type ListSpeakersSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service services.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc services.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Description Create a speaker entity. Name is required; organization and email are optional.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speaker body CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker, err := c.Service.Create(r.Context(), req.Name, req.Organization, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Returns all speakers ordered by name.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data is an array of speakers"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}
