package router

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/navcms/internal/config"
	"github.com/navcms/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	r.Use(requestID())
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公开读取路由，前端直接消费
	public := r.Group("/api")
	{
		public.GET("/menu", api.GetMenuItems)
		public.GET("/pages", api.GetAllPages)
		public.GET("/pages/:slug", api.GetPageBySlug)
	}

	// 后台管理路由
	admin := r.Group("/admin/api")
	{
		admin.POST("/menu-items", api.CreateMenuItem)
		admin.PUT("/menu-items/:id", api.UpdateMenuItem)
		admin.POST("/page-contents", api.CreatePageContent)
		admin.PUT("/page-contents/:id", api.UpdatePageContent)
	}

	return r
}

// corsConfig 根据配置构造跨域策略，前端与后端分域部署时需要
func corsConfig(cfg config.AppConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")

	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	return corsCfg
}

// requestID 为每个请求补充 X-Request-ID，便于日志关联
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
