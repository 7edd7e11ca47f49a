package service

import (
	"errors"
	"strings"

	"github.com/navcms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContentTitleRequired = errors.New("page content title is required")
	ErrPageContentNotFound  = errors.New("page content not found")
)

// ContentService wraps page content operations.
type ContentService struct {
	db *gorm.DB
}

// NewContentService creates a ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// PageContentInput 描述创建页面内容所需的字段，meta 字段缺省存为 NULL。
type PageContentInput struct {
	MenuItemID      uint
	Title           string
	Content         string
	MetaDescription *string
	MetaKeywords    *string
}

// PageContentUpdate 描述部分更新。Title/Content 为 nil 时保持原值；
// meta 字段通过 OptionalString 区分「未提交」「显式 null」「新值」三种状态。
type PageContentUpdate struct {
	Title           *string
	Content         *string
	MetaDescription OptionalString
	MetaKeywords    OptionalString
}

// Create inserts page content after verifying the referenced menu item exists.
// A missing parent fails with ErrMenuItemNotFound and persists nothing.
func (s *ContentService) Create(input PageContentInput) (*db.PageContent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrContentTitleRequired
	}

	var parent db.MenuItem
	if err := s.db.First(&parent, input.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	content := db.PageContent{
		MenuItemID:      input.MenuItemID,
		Title:           title,
		Content:         input.Content,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
	}
	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}
	content.MenuItem = parent

	return &content, nil
}

// Update applies the supplied fields to existing page content. Submitting an
// explicit null for a meta field clears it; omitting the field keeps the
// prior value, including a prior null.
func (s *ContentService) Update(id uint, input PageContentUpdate) (*db.PageContent, error) {
	var content db.PageContent
	if err := s.db.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageContentNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrContentTitleRequired
		}
		content.Title = title
	}

	if input.Content != nil {
		content.Content = *input.Content
	}

	if input.MetaDescription.Set {
		content.MetaDescription = input.MetaDescription.Ptr()
	}

	if input.MetaKeywords.Set {
		content.MetaKeywords = input.MetaKeywords.Ptr()
	}

	// Save 单条 UPDATE 保证整体原子生效，并刷新 updated_at
	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}

	return &content, nil
}
