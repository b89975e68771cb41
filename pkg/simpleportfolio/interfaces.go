package simpleportfolio

import (
	"context"
	"io"
	"time"
)

// Repository defines the interface for entity persistence. Implementations
// own every entity instance; callers receive copies.
type Repository interface {
	// Introduction singleton. GetIntro returns (nil, nil) when the singleton
	// has never been written.
	GetIntro(ctx context.Context) (*IntroSection, error)
	SaveIntro(ctx context.Context, intro *IntroSection) error

	// Other-info singleton, same lifecycle as the introduction.
	GetOther(ctx context.Context) (*OtherSection, error)
	SaveOther(ctx context.Context, other *OtherSection) error

	// Content item operations. UpdateContentItem fails with
	// ErrContentItemNotFound and never creates; DeleteContentItem reports
	// whether an entry existed. ListContentItems is sorted by CreatedAt
	// descending, ties stable by insertion order.
	CreateContentItem(ctx context.Context, item *ContentItem) error
	GetContentItem(ctx context.Context, id string) (*ContentItem, error)
	UpdateContentItem(ctx context.Context, item *ContentItem) error
	DeleteContentItem(ctx context.Context, id string) (bool, error)
	ListContentItems(ctx context.Context) ([]*ContentItem, error)

	// Custom section operations, mirroring content items. ListSections is
	// sorted ascending by the numeric value of Order; non-numeric orders sort
	// last, ties stable by insertion order.
	CreateSection(ctx context.Context, section *CustomSection) error
	GetSection(ctx context.Context, id string) (*CustomSection, error)
	UpdateSection(ctx context.Context, section *CustomSection) error
	DeleteSection(ctx context.Context, id string) (bool, error)
	ListSections(ctx context.Context) ([]*CustomSection, error)
}

// BlobStore defines the interface for upload storage backends. The entity
// store never talks to a BlobStore directly; uploads are resolved to stable
// URLs before any entity is written.
type BlobStore interface {
	// GetUploadURL returns a URL raw bytes can be PUT to out-of-band.
	GetUploadURL(ctx context.Context, objectKey string) (string, error)

	// Upload stores content directly.
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// UploadWithParams stores content with an explicit MIME type.
	UploadWithParams(ctx context.Context, reader io.Reader, params UploadParams) error

	// Download streams stored content.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes stored content.
	Delete(ctx context.Context, objectKey string) error

	// GetObjectMeta retrieves metadata for a stored object.
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)
}

// ObjectMeta contains metadata about an object in storage
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
}

// UploadParams contains parameters for uploading an object
type UploadParams struct {
	ObjectKey string
	MimeType  string
}

// EventSink defines the interface for mutation event handling. Sink failures
// are logged and never fail the triggering operation.
type EventSink interface {
	IntroUpdated(ctx context.Context, intro *IntroSection) error
	OtherUpdated(ctx context.Context, other *OtherSection) error

	ContentItemCreated(ctx context.Context, item *ContentItem) error
	ContentItemUpdated(ctx context.Context, item *ContentItem) error
	ContentItemDeleted(ctx context.Context, id string) error

	SectionCreated(ctx context.Context, section *CustomSection) error
	SectionUpdated(ctx context.Context, section *CustomSection) error
	SectionDeleted(ctx context.Context, id string) error
}
