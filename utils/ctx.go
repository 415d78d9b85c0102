package utils

import "github.com/gin-gonic/gin"

const (
	CtxUserID  = "userId"
	CtxAdminID = "adminId"
	CtxRole    = "role"
)

// CurrentUserID returns the authenticated user's id, 0 when anonymous.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

// CurrentAdminID returns the authenticated admin's id, 0 otherwise.
func CurrentAdminID(c *gin.Context) uint {
	v, _ := c.Get(CtxAdminID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
