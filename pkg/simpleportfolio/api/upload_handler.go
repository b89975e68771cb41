package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// UploadHandler handles the media upload surface: issuing upload handles,
// accepting direct uploads for backends without external URLs, resolving
// uploaded objects into stable media URLs and serving them back.
type UploadHandler struct {
	service simpleportfolio.Service
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(service simpleportfolio.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Routes returns the routes for the upload surface
func (h *UploadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.RequestUpload)
	r.Post("/resolve", h.ResolveUpload)
	r.Put("/*", h.UploadObject)
	return r
}

// MediaRoutes returns the routes serving resolved media paths
func (h *UploadHandler) MediaRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/*", h.ServeMedia)
	return r
}

// RequestUpload issues an upload handle: an object key plus the URL the raw
// file bytes must be PUT to out-of-band.
func (h *UploadHandler) RequestUpload(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.RequestUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	handle, err := h.service.RequestUpload(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Upload handle issued", "object_key", handle.ObjectKey, "backend", handle.Backend)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, handle)
}

// ResolveUploadResponse carries the stable media URL for an uploaded object
type ResolveUploadResponse struct {
	MediaURL string `json:"mediaUrl"`
}

// ResolveUpload resolves an uploaded object key into the stable path clients
// store as mediaUrl.
func (h *UploadHandler) ResolveUpload(w http.ResponseWriter, r *http.Request) {
	var req simpleportfolio.ResolveUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	mediaURL, err := h.service.ResolveMediaURL(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Upload resolved", "object_key", req.ObjectKey)
	render.JSON(w, r, ResolveUploadResponse{MediaURL: mediaURL})
}

// UploadObject accepts raw bytes for backends without externally reachable
// upload URLs. The object key is everything after the route prefix.
func (h *UploadHandler) UploadObject(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "*")
	if objectKey == "" {
		writeError(w, r, http.StatusBadRequest, "missing_object_key", "object key is required in URL path", nil)
		return
	}

	store, err := h.service.GetBackend(h.service.DefaultBackend())
	if err != nil {
		respondError(w, r, err)
		return
	}

	params := simpleportfolio.UploadParams{
		ObjectKey: objectKey,
		MimeType:  r.Header.Get("Content-Type"),
	}
	if err := store.UploadWithParams(r.Context(), r.Body, params); err != nil {
		slog.Error("Upload failed", "object_key", objectKey, "error", err)
		writeError(w, r, http.StatusInternalServerError, "upload_failed", "failed to store uploaded bytes", nil)
		return
	}

	slog.Info("Object uploaded", "object_key", objectKey)
	render.JSON(w, r, map[string]string{"objectKey": objectKey, "status": "uploaded"})
}

// ServeMedia streams a stored object back to the client
func (h *UploadHandler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "*")
	if objectKey == "" {
		writeError(w, r, http.StatusBadRequest, "missing_object_key", "object key is required in URL path", nil)
		return
	}

	store, err := h.service.GetBackend(h.service.DefaultBackend())
	if err != nil {
		respondError(w, r, err)
		return
	}

	meta, err := store.GetObjectMeta(r.Context(), objectKey)
	if err != nil {
		respondError(w, r, simpleportfolio.ErrObjectNotFound)
		return
	}

	reader, err := store.Download(r.Context(), objectKey)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	if meta.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(meta.Size, 10))
	}
	if _, err := io.Copy(w, reader); err != nil {
		slog.Warn("Media stream interrupted", "object_key", objectKey, "error", err)
	}
}
