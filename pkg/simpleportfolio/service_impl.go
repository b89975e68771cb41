package simpleportfolio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository      Repository
	blobStores      map[string]BlobStore
	defaultBackend  string
	eventSink       EventSink
	mediaURLPrefix  string
	uploadURLPrefix string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore adds a blob storage backend
func WithBlobStore(name string, store BlobStore) Option {
	return func(s *service) {
		if s.blobStores == nil {
			s.blobStores = make(map[string]BlobStore)
		}
		s.blobStores[name] = store
	}
}

// WithDefaultBackend selects the backend used for new uploads
func WithDefaultBackend(name string) Option {
	return func(s *service) {
		s.defaultBackend = name
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithMediaURLPrefix sets the stable path prefix resolved media URLs are
// built from (default "/api/media").
func WithMediaURLPrefix(prefix string) Option {
	return func(s *service) {
		s.mediaURLPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithUploadURLPrefix sets the app-served upload path used when a backend
// cannot issue external upload URLs (default "/api/uploads").
func WithUploadURLPrefix(prefix string) Option {
	return func(s *service) {
		s.uploadURLPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		blobStores:      make(map[string]BlobStore),
		defaultBackend:  "memory",
		mediaURLPrefix:  "/api/media",
		uploadURLPrefix: "/api/uploads",
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink()
	}

	return s, nil
}

// Introduction singleton

func (s *service) GetIntro(ctx context.Context) (*IntroSection, error) {
	intro, err := s.repository.GetIntro(ctx)
	if err != nil {
		return nil, err
	}
	if intro == nil {
		// Default-on-read: a never-written singleton still renders placeholder
		// content. The default is not persisted here.
		return NewDefaultIntro(), nil
	}
	return intro, nil
}

func (s *service) UpsertIntro(ctx context.Context, req UpsertIntroRequest) (*IntroSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	intro, err := s.repository.GetIntro(ctx)
	if err != nil {
		return nil, err
	}
	if intro == nil {
		intro = &IntroSection{ID: uuid.NewString()}
	}

	intro.Title = req.Title
	intro.Name = req.Name
	intro.Description = req.Description
	// A missing profile image is stored as "", never left unset.
	intro.ProfileImage = ""
	if req.ProfileImage != nil {
		intro.ProfileImage = *req.ProfileImage
	}
	intro.UpdatedAt = now

	if err := s.repository.SaveIntro(ctx, intro); err != nil {
		return nil, err
	}

	s.fireEvent(ctx, "intro updated", s.eventSink.IntroUpdated(ctx, intro))
	return intro, nil
}

// Content items

func (s *service) ListContentItems(ctx context.Context) ([]*ContentItem, error) {
	return s.repository.ListContentItems(ctx)
}

func (s *service) GetContentItem(ctx context.Context, id string) (*ContentItem, error) {
	return s.repository.GetContentItem(ctx, id)
}

func (s *service) CreateContentItem(ctx context.Context, req CreateContentItemRequest) (*ContentItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &ContentItem{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Type:      req.Type,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		Excerpt:   req.Excerpt,
		SectionID: req.SectionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.SectionID == "" {
		item.SectionID = DefaultSectionID
	}

	if err := s.repository.CreateContentItem(ctx, item); err != nil {
		return nil, &ContentItemError{ItemID: item.ID, Op: "create", Err: err}
	}

	s.fireEvent(ctx, "content item created", s.eventSink.ContentItemCreated(ctx, item))
	return item, nil
}

func (s *service) UpdateContentItem(ctx context.Context, id string, req UpdateContentItemRequest) (*ContentItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	item, err := s.repository.GetContentItem(ctx, id)
	if err != nil {
		return nil, &ContentItemError{ItemID: id, Op: "update", Err: err}
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Content != nil {
		item.Content = req.Content
	}
	if req.MediaURL != nil {
		item.MediaURL = req.MediaURL
	}
	if req.Excerpt != nil {
		item.Excerpt = req.Excerpt
	}
	if req.SectionID != nil {
		item.SectionID = *req.SectionID
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateContentItem(ctx, item); err != nil {
		return nil, &ContentItemError{ItemID: id, Op: "update", Err: err}
	}

	s.fireEvent(ctx, "content item updated", s.eventSink.ContentItemUpdated(ctx, item))
	return item, nil
}

func (s *service) DeleteContentItem(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repository.DeleteContentItem(ctx, id)
	if err != nil {
		return false, &ContentItemError{ItemID: id, Op: "delete", Err: err}
	}
	if deleted {
		s.fireEvent(ctx, "content item deleted", s.eventSink.ContentItemDeleted(ctx, id))
	}
	return deleted, nil
}

// Other-info singleton

func (s *service) GetOther(ctx context.Context) (*OtherSection, error) {
	other, err := s.repository.GetOther(ctx)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return NewDefaultOther(), nil
	}
	return other, nil
}

func (s *service) UpsertOther(ctx context.Context, req UpsertOtherRequest) (*OtherSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	other, err := s.repository.GetOther(ctx)
	if err != nil {
		return nil, err
	}
	if other == nil {
		other = &OtherSection{ID: uuid.NewString()}
	}

	// Each nested block is replaced wholesale. Absent blocks clear the stored
	// value; supplied social links carry "" for every omitted key.
	other.ContactInfo = nil
	if req.ContactInfo != nil {
		other.ContactInfo = &ContactInfo{
			Email:    req.ContactInfo.Email,
			Phone:    req.ContactInfo.Phone,
			Location: req.ContactInfo.Location,
		}
	}
	other.SocialLinks = nil
	if req.SocialLinks != nil {
		other.SocialLinks = &SocialLinks{
			Facebook: req.SocialLinks.Facebook,
			Github:   req.SocialLinks.Github,
			Zalo:     req.SocialLinks.Zalo,
			Linkedin: req.SocialLinks.Linkedin,
			Dribbble: req.SocialLinks.Dribbble,
		}
	}
	other.Skills = nil
	if req.Skills != nil {
		other.Skills = skillsFromInput(req.Skills)
	}
	other.UpdatedAt = time.Now().UTC()

	if err := s.repository.SaveOther(ctx, other); err != nil {
		return nil, err
	}

	s.fireEvent(ctx, "other section updated", s.eventSink.OtherUpdated(ctx, other))
	return other, nil
}

func (s *service) ReplaceSkills(ctx context.Context, req ReplaceSkillsRequest) (*OtherSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Skills == nil {
		return nil, NewValidationError("skills", "is required")
	}

	other, err := s.repository.GetOther(ctx)
	if err != nil {
		return nil, err
	}
	if other == nil {
		other = &OtherSection{ID: uuid.NewString()}
	}

	other.Skills = skillsFromInput(req.Skills)
	other.UpdatedAt = time.Now().UTC()

	if err := s.repository.SaveOther(ctx, other); err != nil {
		return nil, err
	}

	s.fireEvent(ctx, "other section updated", s.eventSink.OtherUpdated(ctx, other))
	return other, nil
}

// Custom sections

func (s *service) ListSections(ctx context.Context) ([]*CustomSection, error) {
	return s.repository.ListSections(ctx)
}

func (s *service) GetSection(ctx context.Context, id string) (*CustomSection, error) {
	return s.repository.GetSection(ctx, id)
}

func (s *service) CreateSection(ctx context.Context, req CreateSectionRequest) (*CustomSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	section := &CustomSection{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Order:           req.Order,
		BackgroundColor: req.BackgroundColor,
		Items:           sectionItemsFromInput(req.Items),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if section.BackgroundColor == "" {
		section.BackgroundColor = "bg-white"
	}

	if err := s.repository.CreateSection(ctx, section); err != nil {
		return nil, &SectionError{SectionID: section.ID, Op: "create", Err: err}
	}

	s.fireEvent(ctx, "section created", s.eventSink.SectionCreated(ctx, section))
	return section, nil
}

func (s *service) UpdateSection(ctx context.Context, id string, req UpdateSectionRequest) (*CustomSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	section, err := s.repository.GetSection(ctx, id)
	if err != nil {
		return nil, &SectionError{SectionID: id, Op: "update", Err: err}
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Description != nil {
		section.Description = req.Description
	}
	if req.Type != nil {
		section.Type = *req.Type
	}
	if req.Order != nil {
		section.Order = *req.Order
	}
	if req.BackgroundColor != nil {
		section.BackgroundColor = *req.BackgroundColor
	}
	section.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateSection(ctx, section); err != nil {
		return nil, &SectionError{SectionID: id, Op: "update", Err: err}
	}

	s.fireEvent(ctx, "section updated", s.eventSink.SectionUpdated(ctx, section))
	return section, nil
}

func (s *service) DeleteSection(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repository.DeleteSection(ctx, id)
	if err != nil {
		return false, &SectionError{SectionID: id, Op: "delete", Err: err}
	}
	if deleted {
		s.fireEvent(ctx, "section deleted", s.eventSink.SectionDeleted(ctx, id))
	}
	return deleted, nil
}

func (s *service) ReplaceSectionItems(ctx context.Context, id string, req ReplaceSectionItemsRequest) (*CustomSection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Items == nil {
		return nil, NewValidationError("items", "is required")
	}

	section, err := s.repository.GetSection(ctx, id)
	if err != nil {
		return nil, &SectionError{SectionID: id, Op: "replace_items", Err: err}
	}

	section.Items = sectionItemsFromInput(req.Items)
	section.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateSection(ctx, section); err != nil {
		return nil, &SectionError{SectionID: id, Op: "replace_items", Err: err}
	}

	s.fireEvent(ctx, "section updated", s.eventSink.SectionUpdated(ctx, section))
	return section, nil
}

// Media uploads

func (s *service) RequestUpload(ctx context.Context, req RequestUploadRequest) (*UploadHandle, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	store, err := s.GetBackend(s.defaultBackend)
	if err != nil {
		return nil, err
	}

	objectKey := newObjectKey(req.FileName)
	uploadURL, err := store.GetUploadURL(ctx, objectKey)
	if err != nil {
		// Backends without externally reachable URLs fall back to the
		// app-served upload endpoint.
		if s.uploadURLPrefix == "" {
			return nil, &StorageError{Backend: s.defaultBackend, Key: objectKey, Op: "get_upload_url", Err: err}
		}
		uploadURL = s.uploadURLPrefix + "/" + objectKey
	}

	return &UploadHandle{
		ObjectKey: objectKey,
		UploadURL: uploadURL,
		Backend:   s.defaultBackend,
	}, nil
}

func (s *service) ResolveMediaURL(ctx context.Context, req ResolveUploadRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	store, err := s.GetBackend(s.defaultBackend)
	if err != nil {
		return "", err
	}

	// The object must already be uploaded; entity records only ever reference
	// resolved media.
	if _, err := store.GetObjectMeta(ctx, req.ObjectKey); err != nil {
		return "", &StorageError{Backend: s.defaultBackend, Key: req.ObjectKey, Op: "resolve", Err: ErrObjectNotFound}
	}

	// Stable app-served path, deliberately not a presigned URL: presigned
	// URLs expire and mediaUrl values are stored long-term.
	return s.mediaURLPrefix + "/" + req.ObjectKey, nil
}

// Storage backend operations

func (s *service) RegisterBackend(name string, store BlobStore) {
	s.blobStores[name] = store
}

func (s *service) GetBackend(name string) (BlobStore, error) {
	store, ok := s.blobStores[name]
	if !ok {
		return nil, fmt.Errorf("storage backend not found: %s", name)
	}
	return store, nil
}

func (s *service) DefaultBackend() string {
	return s.defaultBackend
}

func (s *service) fireEvent(ctx context.Context, event string, err error) {
	if err != nil {
		slog.WarnContext(ctx, "event sink failed", "event", event, "error", err)
	}
}

func skillsFromInput(inputs []SkillInput) []Skill {
	skills := make([]Skill, len(inputs))
	for i, in := range inputs {
		skills[i] = Skill{Name: in.Name, Description: in.Description, Icon: in.Icon}
	}
	return skills
}

func sectionItemsFromInput(inputs []SectionItemInput) []SectionItem {
	items := make([]SectionItem, len(inputs))
	for i, in := range inputs {
		item := SectionItem{
			ID:          in.ID,
			Title:       in.Title,
			Description: in.Description,
			Content:     in.Content,
			MediaURL:    in.MediaURL,
			Type:        in.Type,
			Icon:        in.Icon,
			Metadata:    in.Metadata,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		items[i] = item
	}
	return items
}

// newObjectKey builds a sharded object key for an upload:
// m/<shard>/<uuid>/<sanitized filename>.
func newObjectKey(fileName string) string {
	id := uuid.NewString()
	return fmt.Sprintf("m/%s/%s/%s", id[:2], id, sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." {
		name = "file"
	}
	return name
}
