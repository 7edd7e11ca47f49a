package service

import (
	"errors"
	"strings"

	"github.com/navcms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrMenuNameRequired = errors.New("menu item name is required")
	ErrMenuSlugRequired = errors.New("menu item slug is required")
	ErrMenuOrderInvalid = errors.New("menu item order must not be negative")
	ErrSlugTaken        = errors.New("slug already exists")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// MenuService wraps navigation menu item operations.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

// MenuItemInput 描述创建菜单项所需的字段。
type MenuItemInput struct {
	Name      string
	Slug      string
	SortOrder int
	IsActive  bool
}

// MenuItemUpdate 描述部分更新，nil 字段保持原值。
type MenuItemUpdate struct {
	Name      *string
	Slug      *string
	SortOrder *int
	IsActive  *bool
}

// Create inserts a new menu item with a unique slug.
func (s *MenuService) Create(input MenuItemInput) (*db.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMenuNameRequired
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrMenuSlugRequired
	}

	if input.SortOrder < 0 {
		return nil, ErrMenuOrderInvalid
	}

	var existing db.MenuItem
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := db.MenuItem{
		Name:      name,
		Slug:      slug,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}
	if err := s.db.Create(&item).Error; err != nil {
		// 唯一索引兜底：并发创建同名 slug 时只允许一个成功
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return &item, nil
}

// Update applies the supplied fields to an existing menu item. Omitted fields
// keep their prior value; changing the slug keeps uniqueness across other
// items, while re-submitting the item's own slug is always allowed.
func (s *MenuService) Update(id uint, input MenuItemUpdate) (*db.MenuItem, error) {
	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrMenuNameRequired
		}
		item.Name = name
	}

	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug == "" {
			return nil, ErrMenuSlugRequired
		}

		var existing db.MenuItem
		if err := s.db.Where("slug = ? AND id <> ?", slug, id).First(&existing).Error; err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item.Slug = slug
	}

	if input.SortOrder != nil {
		if *input.SortOrder < 0 {
			return nil, ErrMenuOrderInvalid
		}
		item.SortOrder = *input.SortOrder
	}

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	// Save 单条 UPDATE 保证整体原子生效，并刷新 updated_at
	if err := s.db.Save(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return &item, nil
}

// ListActive returns visible menu items ordered for display. Ties on
// sort_order fall back to insertion order.
func (s *MenuService) ListActive() ([]db.MenuItem, error) {
	items := make([]db.MenuItem, 0)
	if err := s.db.
		Where("is_active = ?", true).
		Order("sort_order asc").
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
