package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Classic Burger":   "classic-burger",
		"  Spicy  Wings! ": "spicy-wings",
		"Crème Brûlée":     "cr-me-br-l-e",
		"already-a-slug":   "already-a-slug",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := NormalizeStatus("", "active"); got != "active" {
		t.Errorf("empty input: %q", got)
	}
	for _, truthy := range []string{"true", "1", "enable", "on", "ACTIVE"} {
		if got := NormalizeStatus(truthy, "inactive"); got != "active" {
			t.Errorf("NormalizeStatus(%q) = %q, want active", truthy, got)
		}
	}
	for _, falsy := range []string{"false", "0", "disabled", "off"} {
		if got := NormalizeStatus(falsy, "active"); got != "inactive" {
			t.Errorf("NormalizeStatus(%q) = %q, want inactive", falsy, got)
		}
	}
	if got := NormalizeStatus("banana", "inactive"); got != "inactive" {
		t.Errorf("unknown input: %q, want fallback", got)
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/x"+query, nil)
		return c
	}

	if _, _, ok := Pagination(ctx("")); ok {
		t.Error("no params: ok = true, want false")
	}
	if _, _, ok := Pagination(ctx("?page=2")); ok {
		t.Error("limit missing: ok = true, want false")
	}

	page, limit, ok := Pagination(ctx("?page=3&limit=20"))
	if !ok || page != 3 || limit != 20 {
		t.Errorf("got page=%d limit=%d ok=%v", page, limit, ok)
	}

	// malformed values fall back instead of failing
	page, limit, ok = Pagination(ctx("?page=abc&limit=-5"))
	if !ok || page != 1 || limit != 10 {
		t.Errorf("fallbacks: page=%d limit=%d ok=%v", page, limit, ok)
	}
}
