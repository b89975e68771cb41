package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// ContentHandler handles HTTP requests for standalone content items
type ContentHandler struct {
	service simpleportfolio.Service
}

// NewContentHandler creates a new content item handler
func NewContentHandler(service simpleportfolio.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for content items
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListContentItems)
	r.Post("/", h.CreateContentItem)
	r.Get("/{id}", h.GetContentItem)
	r.Put("/{id}", h.UpdateContentItem)
	r.Delete("/{id}", h.DeleteContentItem)
	return r
}

// ListContentItems returns all content items, newest first
func (h *ContentHandler) ListContentItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListContentItems(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, items)
}

// GetContentItem retrieves a content item by id
func (h *ContentHandler) GetContentItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.service.GetContentItem(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, item)
}

// CreateContentItem creates a new content item
func (h *ContentHandler) CreateContentItem(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.CreateContentItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	item, err := h.service.CreateContentItem(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Content item created", "item_id", item.ID, "section_id", item.SectionID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// UpdateContentItem applies a partial update to a content item
func (h *ContentHandler) UpdateContentItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req simpleportfolio.UpdateContentItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	item, err := h.service.UpdateContentItem(r.Context(), id, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Content item updated", "item_id", id)
	render.JSON(w, r, item)
}

// DeleteContentItem deletes a content item by id
func (h *ContentHandler) DeleteContentItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteContentItem(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, http.StatusNotFound, "not_found", "Content item not found", nil)
		return
	}

	slog.Info("Content item deleted", "item_id", id)
	render.JSON(w, r, map[string]string{"message": "Content item deleted successfully"})
}
