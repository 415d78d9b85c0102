package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// NormalizeStatus folds the many truthy/falsy spellings clients send into
// "active"/"inactive". Empty input returns fallback unchanged.
func NormalizeStatus(value, fallback string) string {
	if value == "" {
		return fallback
	}
	lowered := strings.ToLower(value)
	switch lowered {
	case "active", "inactive":
		return lowered
	case "true", "1", "yes", "enable", "enabled", "on":
		return "active"
	case "false", "0", "no", "disable", "disabled", "off":
		return "inactive"
	}
	return fallback
}

func ParseBool(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes", "enable", "enabled", "on":
		return true
	case "false", "0", "no", "disable", "disabled", "off":
		return false
	}
	return fallback
}

// Pagination reads page/limit from the query string. ok is false when either
// is missing, which means "return the full set".
func Pagination(c *gin.Context) (page, limit int, ok bool) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	if pageStr == "" || limitStr == "" {
		return 0, 0, false
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit, true
}

// Like builds a case-insensitive substring pattern for LIKE queries.
func Like(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
