package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/navcms/internal/config"
	"github.com/navcms/internal/db"
	"github.com/navcms/internal/service"
)

func strPtr(s string) *string {
	return &s
}

// 演示数据生成器：创建一组常见站点页面
func main() {
	cfg := config.Load()
	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	menus := service.NewMenuService(gdb)
	contents := service.NewContentService(gdb)

	seeds := []struct {
		menu    service.MenuItemInput
		content service.PageContentInput
	}{
		{
			menu: service.MenuItemInput{Name: "Home", Slug: "home", SortOrder: 0, IsActive: true},
			content: service.PageContentInput{
				Title:           "Welcome",
				Content:         "# Welcome\n\nThis site is powered by navcms.",
				MetaDescription: strPtr("Homepage of the site"),
			},
		},
		{
			menu: service.MenuItemInput{Name: "About", Slug: "about", SortOrder: 1, IsActive: true},
			content: service.PageContentInput{
				Title:   "About Us",
				Content: "## About\n\nTell visitors who you are.",
			},
		},
		{
			menu: service.MenuItemInput{Name: "Contact", Slug: "contact", SortOrder: 2, IsActive: false},
			content: service.PageContentInput{
				Title:        "Contact",
				Content:      "Reach us at hello@example.com",
				MetaKeywords: strPtr("contact,email"),
			},
		},
	}

	for _, seed := range seeds {
		item, err := menus.Create(seed.menu)
		if err != nil {
			if errors.Is(err, service.ErrSlugTaken) {
				fmt.Printf("跳过已存在的菜单项: %s\n", seed.menu.Slug)
				continue
			}
			log.Fatalf("创建菜单项 %s 失败: %v", seed.menu.Slug, err)
		}

		input := seed.content
		input.MenuItemID = item.ID
		if _, err := contents.Create(input); err != nil {
			log.Fatalf("创建页面内容 %s 失败: %v", seed.menu.Slug, err)
		}
		fmt.Printf("已创建页面: %s (menu_item_id=%d)\n", seed.menu.Slug, item.ID)
	}

	fmt.Println("演示数据生成完成")
}
