package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/navcms/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderContentHTML 将页面正文渲染为净化后的 HTML，渲染失败时退回转义文本
func renderContentHTML(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTMLEscapeString(content)
	}
	return sanitizer.Sanitize(buf.String())
}

func pageDataJSON(page service.PageData) gin.H {
	return gin.H{
		"id":               page.ID,
		"menu_item_id":     page.MenuItemID,
		"name":             page.Name,
		"slug":             page.Slug,
		"title":            page.Title,
		"content":          page.Content,
		"content_html":     renderContentHTML(page.Content),
		"meta_description": page.MetaDescription,
		"meta_keywords":    page.MetaKeywords,
		"is_active":        page.IsActive,
		"order":            page.SortOrder,
	}
}

// GetPageBySlug 按 slug 获取单个页面。slug 不存在、菜单项已下线或
// 尚无页面内容时返回 page: null，而非错误
func (a *API) GetPageBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	page, err := a.pages.GetBySlug(slug)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取页面失败")
		return
	}

	if page == nil {
		c.JSON(http.StatusOK, gin.H{"page": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": pageDataJSON(*page)})
}

// GetAllPages 获取全部可见页面，按菜单展示顺序排列
func (a *API) GetAllPages(c *gin.Context) {
	pages, err := a.pages.ListPages()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取页面列表失败")
		return
	}

	response := make([]gin.H, 0, len(pages))
	for _, page := range pages {
		response = append(response, pageDataJSON(page))
	}

	c.JSON(http.StatusOK, gin.H{"pages": response})
}
