package simpleportfolio

import "context"

// Service defines the main interface for the simple-portfolio library.
// Requests are validated before any repository call; validation failures,
// not-found conditions and unexpected failures stay distinguishable through
// IsValidation and IsNotFound.
type Service interface {
	// Introduction singleton
	GetIntro(ctx context.Context) (*IntroSection, error)
	UpsertIntro(ctx context.Context, req UpsertIntroRequest) (*IntroSection, error)

	// Content items
	ListContentItems(ctx context.Context) ([]*ContentItem, error)
	GetContentItem(ctx context.Context, id string) (*ContentItem, error)
	CreateContentItem(ctx context.Context, req CreateContentItemRequest) (*ContentItem, error)
	UpdateContentItem(ctx context.Context, id string, req UpdateContentItemRequest) (*ContentItem, error)
	DeleteContentItem(ctx context.Context, id string) (bool, error)

	// Other-info singleton
	GetOther(ctx context.Context) (*OtherSection, error)
	UpsertOther(ctx context.Context, req UpsertOtherRequest) (*OtherSection, error)
	ReplaceSkills(ctx context.Context, req ReplaceSkillsRequest) (*OtherSection, error)

	// Custom sections
	ListSections(ctx context.Context) ([]*CustomSection, error)
	GetSection(ctx context.Context, id string) (*CustomSection, error)
	CreateSection(ctx context.Context, req CreateSectionRequest) (*CustomSection, error)
	UpdateSection(ctx context.Context, id string, req UpdateSectionRequest) (*CustomSection, error)
	DeleteSection(ctx context.Context, id string) (bool, error)
	ReplaceSectionItems(ctx context.Context, id string, req ReplaceSectionItemsRequest) (*CustomSection, error)

	// Media uploads
	RequestUpload(ctx context.Context, req RequestUploadRequest) (*UploadHandle, error)
	ResolveMediaURL(ctx context.Context, req ResolveUploadRequest) (string, error)

	// Storage backend operations
	RegisterBackend(name string, store BlobStore)
	GetBackend(name string) (BlobStore, error)
	DefaultBackend() string
}
