package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navcms/internal/db"
	"github.com/navcms/internal/service"
)

type createPageContentRequest struct {
	MenuItemID      uint    `json:"menu_item_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Content         string  `json:"content"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
}

type updatePageContentRequest struct {
	Title           *string                `json:"title"`
	Content         *string                `json:"content"`
	MetaDescription service.OptionalString `json:"meta_description"`
	MetaKeywords    service.OptionalString `json:"meta_keywords"`
}

func pageContentJSON(content db.PageContent) gin.H {
	return gin.H{
		"id":               content.ID,
		"menu_item_id":     content.MenuItemID,
		"title":            content.Title,
		"content":          content.Content,
		"meta_description": content.MetaDescription,
		"meta_keywords":    content.MetaKeywords,
		"created_at":       content.CreatedAt,
		"updated_at":       content.UpdatedAt,
	}
}

// CreatePageContent 为已存在的菜单项创建页面内容
func (a *API) CreatePageContent(c *gin.Context) {
	var req createPageContentRequest
	if !bindJSON(c, &req, "页面内容参数不正确") {
		return
	}

	content, err := a.contents.Create(service.PageContentInput{
		MenuItemID:      req.MenuItemID,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("菜单项 %d 不存在，无法创建页面内容", req.MenuItemID))
		case errors.Is(err, service.ErrContentTitleRequired):
			respondError(c, http.StatusBadRequest, "页面内容参数不正确")
		default:
			respondError(c, http.StatusInternalServerError, "创建页面内容失败")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "页面内容创建成功", "page_content": pageContentJSON(*content)})
}

// UpdatePageContent 部分更新页面内容。meta 字段显式提交 null 会清空，
// 不提交则保持原值
func (a *API) UpdatePageContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的页面内容ID")
		return
	}

	var req updatePageContentRequest
	if !bindJSON(c, &req, "页面内容参数不正确") {
		return
	}

	content, err := a.contents.Update(id, service.PageContentUpdate{
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageContentNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("页面内容 %d 不存在", id))
		case errors.Is(err, service.ErrContentTitleRequired):
			respondError(c, http.StatusBadRequest, "页面内容参数不正确")
		default:
			respondError(c, http.StatusInternalServerError, "更新页面内容失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面内容更新成功", "page_content": pageContentJSON(*content)})
}
