package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
)

// Repository implements simpleportfolio.Repository using in-memory storage.
// All entities live in process memory and are lost on restart; copies are
// exchanged at the boundary so callers can never mutate stored state.
type Repository struct {
	mu       sync.RWMutex
	intro    *simpleportfolio.IntroSection
	other    *simpleportfolio.OtherSection
	items    map[string]*simpleportfolio.ContentItem
	sections map[string]*simpleportfolio.CustomSection

	// Insertion sequence per entity id, used as the stable tie-break when
	// sorting. Monotonic for the lifetime of the store.
	itemSeq    map[string]uint64
	sectionSeq map[string]uint64
	nextSeq    uint64
}

// New creates a new in-memory repository seeded with placeholder content: a
// default introduction, a default other-info record (including the starter
// skill set) and the distinguished "default" section.
func New() *Repository {
	r := &Repository{
		items:      make(map[string]*simpleportfolio.ContentItem),
		sections:   make(map[string]*simpleportfolio.CustomSection),
		itemSeq:    make(map[string]uint64),
		sectionSeq: make(map[string]uint64),
	}

	r.intro = simpleportfolio.NewDefaultIntro()
	r.other = simpleportfolio.NewDefaultOther()

	section := simpleportfolio.NewDefaultSection()
	r.sections[section.ID] = section
	r.sectionSeq[section.ID] = r.seq()

	return r
}

// NewEmpty creates an in-memory repository without seeded placeholder
// content. Singletons start absent and no default section exists.
func NewEmpty() *Repository {
	return &Repository{
		items:      make(map[string]*simpleportfolio.ContentItem),
		sections:   make(map[string]*simpleportfolio.CustomSection),
		itemSeq:    make(map[string]uint64),
		sectionSeq: make(map[string]uint64),
	}
}

func (r *Repository) seq() uint64 {
	r.nextSeq++
	return r.nextSeq
}

// Introduction singleton

func (r *Repository) GetIntro(ctx context.Context) (*simpleportfolio.IntroSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.intro == nil {
		return nil, nil
	}
	return copyIntro(r.intro), nil
}

func (r *Repository) SaveIntro(ctx context.Context, intro *simpleportfolio.IntroSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intro = copyIntro(intro)
	return nil
}

// Other-info singleton

func (r *Repository) GetOther(ctx context.Context) (*simpleportfolio.OtherSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.other == nil {
		return nil, nil
	}
	return copyOther(r.other), nil
}

func (r *Repository) SaveOther(ctx context.Context, other *simpleportfolio.OtherSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.other = copyOther(other)
	return nil
}

// Content item operations

func (r *Repository) CreateContentItem(ctx context.Context, item *simpleportfolio.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = copyContentItem(item)
	r.itemSeq[item.ID] = r.seq()
	return nil
}

func (r *Repository) GetContentItem(ctx context.Context, id string) (*simpleportfolio.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, simpleportfolio.ErrContentItemNotFound
	}
	return copyContentItem(item), nil
}

func (r *Repository) UpdateContentItem(ctx context.Context, item *simpleportfolio.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return simpleportfolio.ErrContentItemNotFound
	}
	r.items[item.ID] = copyContentItem(item)
	return nil
}

func (r *Repository) DeleteContentItem(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return false, nil
	}
	delete(r.items, id)
	delete(r.itemSeq, id)
	return true, nil
}

func (r *Repository) ListContentItems(ctx context.Context) ([]*simpleportfolio.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simpleportfolio.ContentItem, 0, len(r.items))
	for _, item := range r.items {
		result = append(result, copyContentItem(item))
	}

	// Newest first; equal timestamps fall back to reverse insertion order so
	// repeated listings are deterministic.
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return r.itemSeq[a.ID] > r.itemSeq[b.ID]
	})

	return result, nil
}

// Custom section operations

func (r *Repository) CreateSection(ctx context.Context, section *simpleportfolio.CustomSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sections[section.ID] = copySection(section)
	r.sectionSeq[section.ID] = r.seq()
	return nil
}

func (r *Repository) GetSection(ctx context.Context, id string) (*simpleportfolio.CustomSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, exists := r.sections[id]
	if !exists {
		return nil, simpleportfolio.ErrSectionNotFound
	}
	return copySection(section), nil
}

func (r *Repository) UpdateSection(ctx context.Context, section *simpleportfolio.CustomSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[section.ID]; !exists {
		return simpleportfolio.ErrSectionNotFound
	}
	r.sections[section.ID] = copySection(section)
	return nil
}

func (r *Repository) DeleteSection(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[id]; !exists {
		return false, nil
	}
	delete(r.sections, id)
	delete(r.sectionSeq, id)
	return true, nil
}

func (r *Repository) ListSections(ctx context.Context) ([]*simpleportfolio.CustomSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simpleportfolio.CustomSection, 0, len(r.sections))
	for _, section := range r.sections {
		result = append(result, copySection(section))
	}

	// Ascending by the numeric value of Order, so "10" sorts after "2".
	// Non-numeric orders sort last; within a group, insertion order wins.
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		av, aok := orderValue(a.Order)
		bv, bok := orderValue(b.Order)
		switch {
		case aok && bok && av != bv:
			return av < bv
		case aok != bok:
			return aok
		default:
			return r.sectionSeq[a.ID] < r.sectionSeq[b.ID]
		}
	})

	return result, nil
}

func orderValue(order string) (float64, bool) {
	v, err := strconv.ParseFloat(order, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Copy helpers. Entities carry pointers and slices, so a plain struct copy
// would alias stored state.

func copyIntro(intro *simpleportfolio.IntroSection) *simpleportfolio.IntroSection {
	c := *intro
	return &c
}

func copyOther(other *simpleportfolio.OtherSection) *simpleportfolio.OtherSection {
	c := *other
	if other.ContactInfo != nil {
		ci := *other.ContactInfo
		c.ContactInfo = &ci
	}
	if other.SocialLinks != nil {
		sl := *other.SocialLinks
		c.SocialLinks = &sl
	}
	if other.Skills != nil {
		c.Skills = make([]simpleportfolio.Skill, len(other.Skills))
		copy(c.Skills, other.Skills)
	}
	return &c
}

func copyContentItem(item *simpleportfolio.ContentItem) *simpleportfolio.ContentItem {
	c := *item
	c.Content = copyStringPtr(item.Content)
	c.MediaURL = copyStringPtr(item.MediaURL)
	c.Excerpt = copyStringPtr(item.Excerpt)
	return &c
}

func copySection(section *simpleportfolio.CustomSection) *simpleportfolio.CustomSection {
	c := *section
	c.Description = copyStringPtr(section.Description)
	if section.Items != nil {
		c.Items = make([]simpleportfolio.SectionItem, len(section.Items))
		for i, item := range section.Items {
			c.Items[i] = item
			if item.Metadata != nil {
				meta := make(map[string]any, len(item.Metadata))
				for k, v := range item.Metadata {
					meta[k] = v
				}
				c.Items[i].Metadata = meta
			}
		}
	}
	return &c
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
