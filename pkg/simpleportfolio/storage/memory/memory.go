package memory

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// Backend is an in-memory implementation of the simpleportfolio.BlobStore
// interface, intended for tests and development.
type Backend struct {
	mu        sync.RWMutex
	objects   map[string][]byte
	mimeTypes map[string]string
	updatedAt map[string]time.Time
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		objects:   make(map[string][]byte),
		mimeTypes: make(map[string]string),
		updatedAt: make(map[string]time.Time),
	}
}

// GetUploadURL always fails: the in-memory backend has no externally
// reachable URLs, callers upload through the app-served endpoint instead.
func (b *Backend) GetUploadURL(ctx context.Context, objectKey string) (string, error) {
	return "", simpleportfolio.ErrUploadFailed
}

// Upload stores content directly in memory
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	return b.UploadWithParams(ctx, reader, simpleportfolio.UploadParams{
		ObjectKey: objectKey,
		MimeType:  "application/octet-stream",
	})
}

// UploadWithParams stores content with an explicit MIME type
func (b *Backend) UploadWithParams(ctx context.Context, reader io.Reader, params simpleportfolio.UploadParams) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[params.ObjectKey] = data
	b.updatedAt[params.ObjectKey] = time.Now().UTC()
	if params.MimeType != "" {
		b.mimeTypes[params.ObjectKey] = params.MimeType
	} else if _, exists := b.mimeTypes[params.ObjectKey]; !exists {
		b.mimeTypes[params.ObjectKey] = "application/octet-stream"
	}
	return nil
}

// Download streams stored content
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, simpleportfolio.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes stored content
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[objectKey]; !exists {
		return simpleportfolio.ErrObjectNotFound
	}
	delete(b.objects, objectKey)
	delete(b.mimeTypes, objectKey)
	delete(b.updatedAt, objectKey)
	return nil
}

// GetObjectMeta retrieves metadata for an object in memory
func (b *Backend) GetObjectMeta(ctx context.Context, objectKey string) (*simpleportfolio.ObjectMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, simpleportfolio.ErrObjectNotFound
	}

	return &simpleportfolio.ObjectMeta{
		Key:         objectKey,
		Size:        int64(len(data)),
		ContentType: b.mimeTypes[objectKey],
		UpdatedAt:   b.updatedAt[objectKey],
	}, nil
}
