package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// IntroHandler handles HTTP requests for the introduction singleton
type IntroHandler struct {
	service simpleportfolio.Service
}

// NewIntroHandler creates a new introduction handler
func NewIntroHandler(service simpleportfolio.Service) *IntroHandler {
	return &IntroHandler{service: service}
}

// Routes returns the routes for the introduction singleton
func (h *IntroHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetIntro)
	r.Post("/", h.UpsertIntro)
	return r
}

// GetIntro returns the introduction, synthesizing placeholder content when
// nothing has been written yet.
func (h *IntroHandler) GetIntro(w http.ResponseWriter, r *http.Request) {
	intro, err := h.service.GetIntro(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, intro)
}

// UpsertIntro creates or replaces the introduction
func (h *IntroHandler) UpsertIntro(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.UpsertIntroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	intro, err := h.service.UpsertIntro(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Intro updated", "intro_id", intro.ID)
	render.JSON(w, r, intro)
}
