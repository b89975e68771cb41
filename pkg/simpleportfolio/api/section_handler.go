package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// SectionHandler handles HTTP requests for custom sections
type SectionHandler struct {
	service simpleportfolio.Service
}

// NewSectionHandler creates a new custom section handler
func NewSectionHandler(service simpleportfolio.Service) *SectionHandler {
	return &SectionHandler{service: service}
}

// Routes returns the routes for custom sections
func (h *SectionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListSections)
	r.Post("/", h.CreateSection)
	r.Get("/{id}", h.GetSection)
	r.Put("/{id}", h.UpdateSection)
	r.Delete("/{id}", h.DeleteSection)
	r.Put("/{id}/items", h.ReplaceSectionItems)
	return r
}

// ListSections returns all custom sections ordered by their numeric order
// value, ascending.
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.ListSections(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, sections)
}

// GetSection retrieves a custom section by id
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	section, err := h.service.GetSection(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, section)
}

// CreateSection creates a new custom section
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.CreateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	section, err := h.service.CreateSection(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Section created", "section_id", section.ID, "order", section.Order)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, section)
}

// UpdateSection applies a partial update to a custom section
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req simpleportfolio.UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	section, err := h.service.UpdateSection(r.Context(), id, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Section updated", "section_id", id)
	render.JSON(w, r, section)
}

// DeleteSection deletes a custom section by id
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteSection(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, http.StatusNotFound, "not_found", "Custom section not found", nil)
		return
	}

	slog.Info("Section deleted", "section_id", id)
	render.JSON(w, r, map[string]string{"message": "Custom section deleted successfully"})
}

// ReplaceSectionItems replaces a section's inline items wholesale
func (h *SectionHandler) ReplaceSectionItems(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req simpleportfolio.ReplaceSectionItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	section, err := h.service.ReplaceSectionItems(r.Context(), id, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Section items replaced", "section_id", id, "count", len(section.Items))
	render.JSON(w, r, section)
}
