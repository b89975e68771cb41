package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// ErrorResponse is the JSON error envelope shared by every endpoint. Fields
// is only present for validation failures and maps each offending field to a
// reason.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, fields map[string]string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Code: code, Message: message, Fields: fields})
}

// respondError translates service errors into the three caller-visible
// failure classes: validation (400, with field detail), not found (404) and
// unexpected (500). Not-found detection goes through errors.Is, never string
// matching.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *simpleportfolio.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, "validation_failed", "invalid request data", ve.Fields)
	case simpleportfolio.IsNotFound(err):
		writeError(w, r, http.StatusNotFound, "not_found", notFoundMessage(err), nil)
	default:
		slog.Error("Unexpected failure", "path", r.URL.Path, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "unexpected failure", nil)
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, simpleportfolio.ErrContentItemNotFound):
		return "Content item not found"
	case errors.Is(err, simpleportfolio.ErrSectionNotFound):
		return "Custom section not found"
	case errors.Is(err, simpleportfolio.ErrObjectNotFound):
		return "Uploaded object not found"
	default:
		return "Not found"
	}
}

func writeInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, "invalid_json", err.Error(), nil)
}
