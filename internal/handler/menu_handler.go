package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/navcms/internal/db"
	"github.com/navcms/internal/service"
)

type createMenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Order    *int   `json:"order" binding:"required,gte=0"`
	IsActive *bool  `json:"is_active"`
}

type updateMenuItemRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Order    *int    `json:"order" binding:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active"`
}

func menuItemJSON(item db.MenuItem) gin.H {
	return gin.H{
		"id":         item.ID,
		"name":       item.Name,
		"slug":       item.Slug,
		"order":      item.SortOrder,
		"is_active":  item.IsActive,
		"created_at": item.CreatedAt,
		"updated_at": item.UpdatedAt,
	}
}

// GetMenuItems 获取对外可见的菜单项，按展示顺序排列
func (a *API) GetMenuItems(c *gin.Context) {
	items, err := a.menus.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取菜单列表失败")
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemJSON(item))
	}

	c.JSON(http.StatusOK, gin.H{"menu_items": response})
}

// CreateMenuItem 创建新菜单项，slug 必须全局唯一
func (a *API) CreateMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if !bindJSON(c, &req, "菜单参数不正确") {
		return
	}

	// is_active 缺省视为可见
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := a.menus.Create(service.MenuItemInput{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: *req.Order,
		IsActive:  isActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusConflict, fmt.Sprintf("slug '%s' 已被其他菜单项使用", strings.TrimSpace(req.Slug)))
		case errors.Is(err, service.ErrMenuNameRequired),
			errors.Is(err, service.ErrMenuSlugRequired),
			errors.Is(err, service.ErrMenuOrderInvalid):
			respondError(c, http.StatusBadRequest, "菜单参数不正确")
		default:
			respondError(c, http.StatusInternalServerError, "创建菜单项失败")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "菜单项创建成功", "menu_item": menuItemJSON(*item)})
}

// UpdateMenuItem 部分更新菜单项，未提交的字段保持原值
func (a *API) UpdateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单项ID")
		return
	}

	var req updateMenuItemRequest
	if !bindJSON(c, &req, "菜单参数不正确") {
		return
	}

	item, err := a.menus.Update(id, service.MenuItemUpdate{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.Order,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("菜单项 %d 不存在", id))
		case errors.Is(err, service.ErrSlugTaken):
			slug := ""
			if req.Slug != nil {
				slug = strings.TrimSpace(*req.Slug)
			}
			respondError(c, http.StatusConflict, fmt.Sprintf("slug '%s' 已被其他菜单项使用", slug))
		case errors.Is(err, service.ErrMenuNameRequired),
			errors.Is(err, service.ErrMenuSlugRequired),
			errors.Is(err, service.ErrMenuOrderInvalid):
			respondError(c, http.StatusBadRequest, "菜单参数不正确")
		default:
			respondError(c, http.StatusInternalServerError, "更新菜单项失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "菜单项更新成功", "menu_item": menuItemJSON(*item)})
}
