package handler

import (
	"github.com/navcms/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	menus    *service.MenuService
	contents *service.ContentService
	pages    *service.PageService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:       gdb,
		menus:    service.NewMenuService(gdb),
		contents: service.NewContentService(gdb),
		pages:    service.NewPageService(gdb),
	}
}
