package simpleportfolio

import "time"

// ContentType is the domain type for standalone content items.
type ContentType string

// Content type constants (typed).
const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
)

// SectionType controls how a custom section is rendered.
type SectionType string

// Section type constants (typed).
const (
	SectionTypeGrid  SectionType = "grid"
	SectionTypeList  SectionType = "list"
	SectionTypeCards SectionType = "cards"
)

// SectionItemType is the domain type for items embedded inside a custom
// section. It is a superset of ContentType: inline items may also be links.
type SectionItemType string

// Section item type constants (typed).
const (
	SectionItemTypeText  SectionItemType = "text"
	SectionItemTypeImage SectionItemType = "image"
	SectionItemTypeVideo SectionItemType = "video"
	SectionItemTypeLink  SectionItemType = "link"
)

// DefaultSectionID is the id of the distinguished section seeded at store
// construction. Content items created without an explicit section reference
// land here.
const DefaultSectionID = "default"

// IntroSection is the singleton hero block of the public page.
type IntroSection struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProfileImage string    `json:"profileImage"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ContactInfo holds the contact block of the other-info singleton.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SocialLinks holds the social profile URLs of the other-info singleton.
// Writes replace the whole struct; missing keys are normalized to "".
type SocialLinks struct {
	Facebook string `json:"facebook"`
	Github   string `json:"github"`
	Zalo     string `json:"zalo"`
	Linkedin string `json:"linkedin"`
	Dribbble string `json:"dribbble"`
}

// Skill is one entry of the skills list on the other-info singleton.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OtherSection is the singleton holding contact info, social links and the
// skills list. Nested objects are replaced wholesale on update, never merged
// key by key.
type OtherSection struct {
	ID          string       `json:"id"`
	ContactInfo *ContactInfo `json:"contactInfo"`
	SocialLinks *SocialLinks `json:"socialLinks"`
	Skills      []Skill      `json:"skills"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ContentItem is a standalone gallery entry. Items reference a custom section
// through SectionID; the reference is advisory and never enforced against the
// section collection.
type ContentItem struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Type      ContentType `json:"type"`
	Content   *string     `json:"content"`
	MediaURL  *string     `json:"mediaUrl"`
	Excerpt   *string     `json:"excerpt"`
	SectionID string      `json:"sectionId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SectionItem is a content record embedded directly inside a custom section's
// Items array. It is independent from ContentItem: the two representations
// coexist and are read separately by clients.
type SectionItem struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Content     string          `json:"content,omitempty"`
	MediaURL    string          `json:"mediaUrl,omitempty"`
	Type        SectionItemType `json:"type"`
	Icon        string          `json:"icon,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// CustomSection is an admin-defined page section. Order is stored as text but
// compared numerically when listing.
type CustomSection struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     *string       `json:"description"`
	Type            SectionType   `json:"type"`
	Order           string        `json:"order"`
	BackgroundColor string        `json:"backgroundColor"`
	Items           []SectionItem `json:"items"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// IsValid reports whether the content type is one of the known values.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo:
		return true
	}
	return false
}

// IsValid reports whether the section type is one of the known values.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeGrid, SectionTypeList, SectionTypeCards:
		return true
	}
	return false
}

// IsValid reports whether the section item type is one of the known values.
func (t SectionItemType) IsValid() bool {
	switch t {
	case SectionItemTypeText, SectionItemTypeImage, SectionItemTypeVideo, SectionItemTypeLink:
		return true
	}
	return false
}
