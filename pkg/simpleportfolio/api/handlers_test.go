package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/api"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/repo/memory"
	memorystorage "github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/memory"
)

func newTestRouter(t *testing.T) chi.Router {
	svc, err := simpleportfolio.New(
		simpleportfolio.WithRepository(memory.New()),
		simpleportfolio.WithBlobStore("memory", memorystorage.New()),
	)
	require.NoError(t, err)

	uploadHandler := api.NewUploadHandler(svc)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Mount("/intro", api.NewIntroHandler(svc).Routes())
		r.Mount("/content", api.NewContentHandler(svc).Routes())
		r.Mount("/other", api.NewOtherHandler(svc).Routes())
		r.Mount("/sections", api.NewSectionHandler(svc).Routes())
		r.Mount("/uploads", uploadHandler.Routes())
		r.Mount("/media", uploadHandler.MediaRoutes())
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestIntroEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("GetReturnsSeededIntro", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/intro", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var intro simpleportfolio.IntroSection
		decodeBody(t, rec, &intro)
		assert.Equal(t, "Xin chào, tôi là", intro.Title)
	})

	t.Run("PostReplacesIntro", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/intro", map[string]any{
			"title":       "Hello, I am",
			"name":        "Jane",
			"description": "Designer",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var intro simpleportfolio.IntroSection
		decodeBody(t, rec, &intro)
		assert.Equal(t, "Jane", intro.Name)
		assert.Equal(t, "", intro.ProfileImage)
	})

	t.Run("PostMissingFields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/intro", map[string]any{
			"title": "only title",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "validation_failed", errResp.Code)
		assert.Contains(t, errResp.Fields, "name")
		assert.Contains(t, errResp.Fields, "description")
	})

	t.Run("PostMalformedJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/intro", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "invalid_json", errResp.Code)
	})
}

func TestContentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	createItem := func(t *testing.T, title string) simpleportfolio.ContentItem {
		rec := doJSON(t, router, http.MethodPost, "/api/content", map[string]any{
			"title":   title,
			"type":    "text",
			"content": "body of " + title,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var item simpleportfolio.ContentItem
		decodeBody(t, rec, &item)
		return item
	}

	t.Run("CreateDefaultsSection", func(t *testing.T) {
		item := createItem(t, "First")
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, simpleportfolio.DefaultSectionID, item.SectionID)
	})

	t.Run("CreateRejectsUnknownType", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/content", map[string]any{
			"title": "Bad",
			"type":  "audio",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "validation_failed", errResp.Code)
		assert.Contains(t, errResp.Fields, "type")
	})

	t.Run("GetAndList", func(t *testing.T) {
		item := createItem(t, "Listable")

		rec := doJSON(t, router, http.MethodGet, "/api/content/"+item.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/content", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []simpleportfolio.ContentItem
		decodeBody(t, rec, &items)
		require.NotEmpty(t, items)
		// Newest first.
		assert.Equal(t, item.ID, items[0].ID)
	})

	t.Run("GetMissing", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/content/nope", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "not_found", errResp.Code)
		assert.Equal(t, "Content item not found", errResp.Message)
	})

	t.Run("UpdateMergesFields", func(t *testing.T) {
		item := createItem(t, "Before")

		rec := doJSON(t, router, http.MethodPut, "/api/content/"+item.ID, map[string]any{
			"title": "After",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated simpleportfolio.ContentItem
		decodeBody(t, rec, &updated)
		assert.Equal(t, "After", updated.Title)
		require.NotNil(t, updated.Content)
		assert.Equal(t, "body of Before", *updated.Content)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/content/nope", map[string]any{
			"title": "anything",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		item := createItem(t, "Doomed")

		rec := doJSON(t, router, http.MethodDelete, "/api/content/"+item.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Content item deleted successfully", resp["message"])

		rec = doJSON(t, router, http.MethodDelete, "/api/content/"+item.ID, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOtherEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("GetSeededOther", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/other", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var other simpleportfolio.OtherSection
		decodeBody(t, rec, &other)
		require.NotNil(t, other.ContactInfo)
		assert.Len(t, other.Skills, 4)
	})

	t.Run("UpsertReplacesBlocks", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/other", map[string]any{
			"socialLinks": map[string]any{"github": "https://github.com/jane"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var other simpleportfolio.OtherSection
		decodeBody(t, rec, &other)
		assert.Nil(t, other.ContactInfo)
		require.NotNil(t, other.SocialLinks)
		assert.Equal(t, "https://github.com/jane", other.SocialLinks.Github)
		assert.Equal(t, "", other.SocialLinks.Facebook)
	})

	t.Run("ReplaceSkills", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/other/skills", map[string]any{
			"skills": []map[string]any{
				{"name": "Branding", "description": "Visual identity", "icon": "Palette"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var other simpleportfolio.OtherSection
		decodeBody(t, rec, &other)
		require.Len(t, other.Skills, 1)
		assert.Equal(t, "Branding", other.Skills[0].Name)
	})

	t.Run("ReplaceSkillsMissingList", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/other/skills", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "validation_failed", errResp.Code)
		assert.Contains(t, errResp.Fields, "skills")
	})
}

func TestSectionEndpoints(t *testing.T) {
	router := newTestRouter(t)

	createSection := func(t *testing.T, title, order string) simpleportfolio.CustomSection {
		rec := doJSON(t, router, http.MethodPost, "/api/sections", map[string]any{
			"title": title,
			"type":  "grid",
			"order": order,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var section simpleportfolio.CustomSection
		decodeBody(t, rec, &section)
		return section
	}

	t.Run("CreateRejectsNonNumericOrder", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/sections", map[string]any{
			"title": "Bad",
			"type":  "grid",
			"order": "first",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Contains(t, errResp.Fields, "order")
	})

	t.Run("ListNumericOrdering", func(t *testing.T) {
		createSection(t, "Ten", "10")
		createSection(t, "Two", "2")

		rec := doJSON(t, router, http.MethodGet, "/api/sections", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var sections []simpleportfolio.CustomSection
		decodeBody(t, rec, &sections)
		// Seeded default section has order "0" and comes first.
		require.Len(t, sections, 3)
		assert.Equal(t, "0", sections[0].Order)
		assert.Equal(t, "2", sections[1].Order)
		assert.Equal(t, "10", sections[2].Order)
	})

	t.Run("UpdateSection", func(t *testing.T) {
		section := createSection(t, "Before", "4")

		rec := doJSON(t, router, http.MethodPut, "/api/sections/"+section.ID, map[string]any{
			"title": "After",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated simpleportfolio.CustomSection
		decodeBody(t, rec, &updated)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, "4", updated.Order)
	})

	t.Run("ReplaceItems", func(t *testing.T) {
		section := createSection(t, "Gallery", "5")

		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/sections/%s/items", section.ID), map[string]any{
			"items": []map[string]any{
				{"title": "Shot", "type": "image", "mediaUrl": "/api/media/m/ab/abc/shot.png"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated simpleportfolio.CustomSection
		decodeBody(t, rec, &updated)
		require.Len(t, updated.Items, 1)
		assert.NotEmpty(t, updated.Items[0].ID)
		assert.Equal(t, "Shot", updated.Items[0].Title)
	})

	t.Run("ReplaceItemsOnMissingSection", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/sections/nope/items", map[string]any{
			"items": []map[string]any{},
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		section := createSection(t, "Doomed", "6")

		rec := doJSON(t, router, http.MethodDelete, "/api/sections/"+section.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/sections/"+section.ID, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp api.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "Custom section not found", errResp.Message)
	})
}

func TestUploadFlow(t *testing.T) {
	router := newTestRouter(t)

	// Request a handle.
	rec := doJSON(t, router, http.MethodPost, "/api/uploads", map[string]any{
		"fileName": "photo.png",
		"mimeType": "image/png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var handle simpleportfolio.UploadHandle
	decodeBody(t, rec, &handle)
	assert.Equal(t, "memory", handle.Backend)
	require.True(t, strings.HasPrefix(handle.UploadURL, "/api/uploads/"))

	// Resolving before the bytes arrive fails.
	rec = doJSON(t, router, http.MethodPost, "/api/uploads/resolve", map[string]any{
		"objectKey": handle.ObjectKey,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// PUT the raw bytes to the returned URL.
	req := httptest.NewRequest(http.MethodPut, handle.UploadURL, strings.NewReader("pngbytes"))
	req.Header.Set("Content-Type", "image/png")
	putRec := httptest.NewRecorder()
	router.ServeHTTP(putRec, req)
	require.Equal(t, http.StatusOK, putRec.Code)

	// Resolve into a stable media URL.
	rec = doJSON(t, router, http.MethodPost, "/api/uploads/resolve", map[string]any{
		"objectKey": handle.ObjectKey,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resolved api.ResolveUploadResponse
	decodeBody(t, rec, &resolved)
	assert.Equal(t, "/api/media/"+handle.ObjectKey, resolved.MediaURL)

	// The media URL serves the original bytes back.
	getReq := httptest.NewRequest(http.MethodGet, resolved.MediaURL, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Equal(t, "image/png", getRec.Header().Get("Content-Type"))
	assert.Equal(t, "pngbytes", getRec.Body.String())
}

func TestServeMediaMissingObject(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/media/m/ab/abc/ghost.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp api.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "Uploaded object not found", errResp.Message)
}

func TestResolveRejectsEmptyKey(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/uploads/resolve", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp api.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "validation_failed", errResp.Code)
	assert.Contains(t, errResp.Fields, "objectKey")
}
