package db

import "gorm.io/gorm"

// MenuItem 定义了导航菜单项模型
// Slug 全局唯一，作为公开页面的访问标识
// SortOrder 控制前台展示顺序，IsActive 控制是否对外可见
type MenuItem struct {
	gorm.Model
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
}

// TableName 自定义表名以保持命名一致。
func (MenuItem) TableName() string {
	return "menu_items"
}
