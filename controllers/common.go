package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID reads the numeric :id path parameter, 0 when absent or malformed.
func paramID(c *gin.Context) uint {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}

// formUint reads an optional numeric form field.
func formUint(c *gin.Context, key string) uint {
	v, err := strconv.Atoi(c.PostForm(key))
	if err != nil || v < 0 {
		return 0
	}
	return uint(v)
}

// formFloat reads an optional numeric form field, nil when absent.
func formFloat(c *gin.Context, key string) *float64 {
	raw := c.PostForm(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
