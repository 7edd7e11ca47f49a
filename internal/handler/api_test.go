package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navcms/internal/db"
	"github.com/navcms/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T, name string) (*API, *gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s-%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.MenuItem{}, &db.PageContent{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return NewAPI(gdb), gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func newJSONContext(t *testing.T, w *httptest.ResponseRecorder, method, target string, payload interface{}) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(w)
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func createMenuItemForTest(t *testing.T, api *API, slug string, order int, active bool) *db.MenuItem {
	t.Helper()

	item, err := api.menus.Create(service.MenuItemInput{
		Name:      slug,
		Slug:      slug,
		SortOrder: order,
		IsActive:  active,
	})
	if err != nil {
		t.Fatalf("create menu item %s: %v", slug, err)
	}
	return item
}

func createContentForTest(t *testing.T, api *API, menuItemID uint, title string) *db.PageContent {
	t.Helper()

	content, err := api.contents.Create(service.PageContentInput{
		MenuItemID: menuItemID,
		Title:      title,
		Content:    "body of " + title,
	})
	if err != nil {
		t.Fatalf("create page content %s: %v", title, err)
	}
	return content
}
