package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/navcms/internal/db"
)

func TestCreatePageContentMissingParent(t *testing.T) {
	api, gdb, cleanup := setupTestAPI(t, "handler-content-parent")
	defer cleanup()

	w := httptest.NewRecorder()
	c := newJSONContext(t, w, http.MethodPost, "/admin/api/page-contents", gin.H{
		"menu_item_id": 42,
		"title":        "Orphan",
		"content":      "no parent",
	})

	api.CreatePageContent(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "42") {
		t.Fatalf("message must name the missing id: %q", msg)
	}

	var count int64
	gdb.Model(&db.PageContent{}).Count(&count)
	if count != 0 {
		t.Fatalf("failed create must not persist, found %d rows", count)
	}
}

func TestCreatePageContentDefaultsMetaToNull(t *testing.T) {
	api, _, cleanup := setupTestAPI(t, "handler-content-create")
	defer cleanup()

	item := createMenuItemForTest(t, api, "home", 0, true)

	w := httptest.NewRecorder()
	c := newJSONContext(t, w, http.MethodPost, "/admin/api/page-contents", gin.H{
		"menu_item_id": item.ID,
		"title":        "Welcome",
		"content":      "Hi",
	})

	api.CreatePageContent(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	content, _ := body["page_content"].(map[string]interface{})
	if content["title"] != "Welcome" || content["content"] != "Hi" {
		t.Fatalf("unexpected payload: %v", content)
	}
	if content["meta_description"] != nil || content["meta_keywords"] != nil {
		t.Fatalf("expected null meta fields: %v", content)
	}
}

func TestUpdatePageContentNotFound(t *testing.T) {
	api, _, cleanup := setupTestAPI(t, "handler-content-404")
	defer cleanup()

	w := httptest.NewRecorder()
	c := newJSONContext(t, w, http.MethodPut, "/admin/api/page-contents/7", gin.H{"title": "Ghost"})
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	api.UpdatePageContent(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdatePageContentExplicitNullClearsMeta(t *testing.T) {
	api, gdb, cleanup := setupTestAPI(t, "handler-content-null")
	defer cleanup()

	item := createMenuItemForTest(t, api, "home", 0, true)
	desc := "keep me"
	keywords := "drop,me"
	content := createContentForTest(t, api, item.ID, "Welcome")
	if err := gdb.Model(&db.PageContent{}).Where("id = ?", content.ID).
		Updates(map[string]interface{}{"meta_description": desc, "meta_keywords": keywords}).Error; err != nil {
		t.Fatalf("seed meta fields: %v", err)
	}

	// 原始 JSON 构造：meta_keywords 显式 null，meta_description 不出现
	raw := []byte(`{"meta_keywords": null}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/admin/api/page-contents/"+strconv.Itoa(int(content.ID)), bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(content.ID))}}

	api.UpdatePageContent(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	updated, _ := body["page_content"].(map[string]interface{})
	if updated["meta_keywords"] != nil {
		t.Fatalf("explicit null must clear meta_keywords, got %v", updated["meta_keywords"])
	}
	if updated["meta_description"] != "keep me" {
		t.Fatalf("omitted meta_description must survive, got %v", updated["meta_description"])
	}
}
