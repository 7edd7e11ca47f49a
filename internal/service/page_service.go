package service

import (
	"gorm.io/gorm"
)

// PageData 是菜单项与页面内容拼合后的只读视图，ID 取页面内容的主键。
type PageData struct {
	ID              uint
	MenuItemID      uint
	Name            string
	Slug            string
	Title           string
	Content         string
	MetaDescription *string
	MetaKeywords    *string
	IsActive        bool
	SortOrder       int
}

// PageService exposes the public read model joining menu items with their
// page content. Only active menu items are visible through it.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

const pageDataColumns = "page_contents.id AS id, " +
	"menu_items.id AS menu_item_id, " +
	"menu_items.name AS name, " +
	"menu_items.slug AS slug, " +
	"page_contents.title AS title, " +
	"page_contents.content AS content, " +
	"page_contents.meta_description AS meta_description, " +
	"page_contents.meta_keywords AS meta_keywords, " +
	"menu_items.is_active AS is_active, " +
	"menu_items.sort_order AS sort_order"

// GetBySlug fetches the page for a given slug. It returns (nil, nil) when the
// slug is unknown, the menu item is inactive, or no content references it —
// absence is not an error on this path. Should multiple content rows exist
// for one menu item, the earliest-created row wins for reproducibility.
func (s *PageService) GetBySlug(slug string) (*PageData, error) {
	var pages []PageData
	if err := s.db.
		Table("page_contents").
		Select(pageDataColumns).
		Joins("JOIN menu_items ON menu_items.id = page_contents.menu_item_id").
		Where("menu_items.slug = ? AND menu_items.is_active = ?", slug, true).
		Order("page_contents.id asc").
		Limit(1).
		Scan(&pages).Error; err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, nil
	}
	return &pages[0], nil
}

// ListPages returns every visible page ordered for display. The result is an
// empty slice, never nil, when nothing matches.
func (s *PageService) ListPages() ([]PageData, error) {
	pages := make([]PageData, 0)
	if err := s.db.
		Table("page_contents").
		Select(pageDataColumns).
		Joins("JOIN menu_items ON menu_items.id = page_contents.menu_item_id").
		Where("menu_items.is_active = ?", true).
		Order("menu_items.sort_order asc").
		Order("menu_items.id asc").
		Order("page_contents.id asc").
		Scan(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}
