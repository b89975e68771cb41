package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// OtherHandler handles HTTP requests for the other-info singleton
type OtherHandler struct {
	service simpleportfolio.Service
}

// NewOtherHandler creates a new other-info handler
func NewOtherHandler(service simpleportfolio.Service) *OtherHandler {
	return &OtherHandler{service: service}
}

// Routes returns the routes for the other-info singleton
func (h *OtherHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetOther)
	r.Post("/", h.UpsertOther)
	r.Put("/skills", h.ReplaceSkills)
	return r
}

// GetOther returns the other-info singleton, with synthesized defaults when
// nothing has been written yet.
func (h *OtherHandler) GetOther(w http.ResponseWriter, r *http.Request) {
	other, err := h.service.GetOther(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, other)
}

// UpsertOther creates or replaces the other-info singleton
func (h *OtherHandler) UpsertOther(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.UpsertOtherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	other, err := h.service.UpsertOther(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Other section updated", "other_id", other.ID)
	render.JSON(w, r, other)
}

// ReplaceSkills replaces the skills array wholesale
func (h *OtherHandler) ReplaceSkills(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.ReplaceSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	other, err := h.service.ReplaceSkills(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Skills replaced", "other_id", other.ID, "count", len(other.Skills))
	render.JSON(w, r, other)
}
