package simpleportfolio

// Request/Response DTOs
//
// Create requests carry the insertable shape of each entity: everything except
// server-assigned ids and timestamps. Update requests relax every field to a
// pointer so the merge contract (supplied fields replace, absent fields stay
// untouched) is visible in the type rather than implied by map spreading.

// UpsertIntroRequest contains parameters for creating or replacing the
// introduction singleton.
type UpsertIntroRequest struct {
	Title        string  `json:"title" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	ProfileImage *string `json:"profileImage"`
}

// CreateContentItemRequest contains parameters for creating a content item.
type CreateContentItemRequest struct {
	Title     string      `json:"title" validate:"required"`
	Type      ContentType `json:"type" validate:"required,oneof=text image video"`
	Content   *string     `json:"content"`
	MediaURL  *string     `json:"mediaUrl"`
	Excerpt   *string     `json:"excerpt"`
	SectionID string      `json:"sectionId"`
}

// UpdateContentItemRequest contains the partial-update shape of a content
// item. Nil fields are left untouched.
type UpdateContentItemRequest struct {
	Title     *string      `json:"title" validate:"omitempty,min=1"`
	Type      *ContentType `json:"type" validate:"omitempty,oneof=text image video"`
	Content   *string      `json:"content"`
	MediaURL  *string      `json:"mediaUrl"`
	Excerpt   *string      `json:"excerpt"`
	SectionID *string      `json:"sectionId" validate:"omitempty,min=1"`
}

// ContactInfoInput is the insertable shape of the contact block.
type ContactInfoInput struct {
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// SocialLinksInput is the insertable shape of the social links block. Every
// key is optional; missing keys are stored as empty strings.
type SocialLinksInput struct {
	Facebook string `json:"facebook"`
	Github   string `json:"github"`
	Zalo     string `json:"zalo"`
	Linkedin string `json:"linkedin"`
	Dribbble string `json:"dribbble"`
}

// SkillInput is the insertable shape of one skill entry.
type SkillInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
}

// UpsertOtherRequest contains parameters for creating or replacing the
// other-info singleton. Each nested block is replaced wholesale: a request
// without ContactInfo clears the stored contact info.
type UpsertOtherRequest struct {
	ContactInfo *ContactInfoInput `json:"contactInfo"`
	SocialLinks *SocialLinksInput `json:"socialLinks"`
	Skills      []SkillInput      `json:"skills" validate:"omitempty,dive"`
}

// ReplaceSkillsRequest contains parameters for the dedicated skills
// replacement operation. An empty list is a valid replacement; a missing list
// is rejected by the service.
type ReplaceSkillsRequest struct {
	Skills []SkillInput `json:"skills" validate:"dive"`
}

// SectionItemInput is the insertable shape of an inline section item. ID is
// optional; the service assigns one when empty.
type SectionItemInput struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	MediaURL    string          `json:"mediaUrl"`
	Type        SectionItemType `json:"type" validate:"required,oneof=text image video link"`
	Icon        string          `json:"icon"`
	Metadata    map[string]any  `json:"metadata"`
}

// CreateSectionRequest contains parameters for creating a custom section.
// Order must be numeric text; it is compared as a number when listing.
type CreateSectionRequest struct {
	Title           string             `json:"title" validate:"required"`
	Description     *string            `json:"description"`
	Type            SectionType        `json:"type" validate:"required,oneof=grid list cards"`
	Order           string             `json:"order" validate:"required,numeric"`
	BackgroundColor string             `json:"backgroundColor"`
	Items           []SectionItemInput `json:"items" validate:"omitempty,dive"`
}

// UpdateSectionRequest contains the partial-update shape of a custom section.
// The inline items array has its own replacement operation and is not part of
// the partial update.
type UpdateSectionRequest struct {
	Title           *string      `json:"title" validate:"omitempty,min=1"`
	Description     *string      `json:"description"`
	Type            *SectionType `json:"type" validate:"omitempty,oneof=grid list cards"`
	Order           *string      `json:"order" validate:"omitempty,numeric"`
	BackgroundColor *string      `json:"backgroundColor"`
}

// ReplaceSectionItemsRequest contains parameters for wholesale replacement of
// a section's inline items. An empty list clears the section.
type ReplaceSectionItemsRequest struct {
	Items []SectionItemInput `json:"items" validate:"dive"`
}

// RequestUploadRequest contains parameters for requesting an upload handle.
type RequestUploadRequest struct {
	FileName string `json:"fileName" validate:"required"`
	MimeType string `json:"mimeType"`
}

// UploadHandle is the result of requesting an upload: an opaque object key
// plus the URL the raw bytes must be PUT to.
type UploadHandle struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
	Backend   string `json:"backend"`
}

// ResolveUploadRequest contains parameters for resolving an uploaded object
// key into a stable media URL.
type ResolveUploadRequest struct {
	ObjectKey string `json:"objectKey" validate:"required"`
}
