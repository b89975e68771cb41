package simpleportfolio

import (
	"time"

	"github.com/google/uuid"
)

// Placeholder content seeded into a fresh store so the public page renders
// something plausible before the admin has written anything.

// DefaultSkills is the fixed starter skill set of the other-info singleton.
func DefaultSkills() []Skill {
	return []Skill{
		{Name: "UI/UX Design", Description: "Thiết kế giao diện người dùng sáng tạo", Icon: "PaintbrushVertical"},
		{Name: "Frontend", Description: "Phát triển giao diện web hiện đại", Icon: "Code"},
		{Name: "Mobile Design", Description: "Thiết kế ứng dụng di động", Icon: "Smartphone"},
		{Name: "Content", Description: "Tạo nội dung sáng tạo và hấp dẫn", Icon: "FileImage"},
	}
}

// NewDefaultIntro builds the placeholder introduction singleton.
func NewDefaultIntro() *IntroSection {
	return &IntroSection{
		ID:           uuid.NewString(),
		Title:        "Xin chào, tôi là",
		Name:         "Creative Designer",
		Description:  "Tôi tạo ra những trải nghiệm số đẹp và có ý nghĩa thông qua thiết kế sáng tạo và công nghệ hiện đại.",
		ProfileImage: "",
		UpdatedAt:    time.Now().UTC(),
	}
}

// NewDefaultOther builds the placeholder other-info singleton, including the
// fixed four-skill starter set.
func NewDefaultOther() *OtherSection {
	return &OtherSection{
		ID: uuid.NewString(),
		ContactInfo: &ContactInfo{
			Email:    "hello@portfolio.com",
			Phone:    "+84 123 456 789",
			Location: "Hà Nội, Việt Nam",
		},
		SocialLinks: &SocialLinks{},
		Skills:      DefaultSkills(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// NewDefaultSection builds the distinguished section content items fall into
// when created without an explicit section reference. Its id is fixed so the
// sectionId default always points at a live section on a fresh store.
func NewDefaultSection() *CustomSection {
	now := time.Now().UTC()
	return &CustomSection{
		ID:              DefaultSectionID,
		Title:           "Nội dung",
		Type:            SectionTypeGrid,
		Order:           "0",
		BackgroundColor: "bg-white",
		Items:           []SectionItem{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
