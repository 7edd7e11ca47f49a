package db

import "gorm.io/gorm"

// PageContent 存储菜单项对应的页面正文与 SEO 元信息
// MenuItemID 在写入时校验父记录存在；meta 字段允许各自为 NULL
type PageContent struct {
	gorm.Model
	MenuItemID      uint `gorm:"index;not null"`
	MenuItem        MenuItem
	Title           string `gorm:"not null"`
	Content         string `gorm:"type:text"`
	MetaDescription *string
	MetaKeywords    *string
}

// TableName 自定义表名以保持命名一致。
func (PageContent) TableName() string {
	return "page_contents"
}
