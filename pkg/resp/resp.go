package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every handler answers with the same envelope: {"status": bool, "message": string, ...}.
// Most business failures come back as HTTP 200 with status:false; the HTTP
// error codes are reserved for auth and missing resources.

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": true, "message": message, "data": data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": message})
}

// Fail is a business failure delivered as HTTP 200.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": false, "message": message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"status": false, "message": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"status": false, "message": message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"status": false, "message": message})
}

// ServerError exposes the raw error message.
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": err.Error()})
}

// List answers a full, unpaginated result set.
func List(c *gin.Context, message string, data any, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"status":      true,
		"message":     message,
		"data":        data,
		"total":       total,
		"currentPage": nil,
		"totalPages":  nil,
	})
}

// Paginated answers one page plus totals; totalPages = ceil(total/limit).
func Paginated(c *gin.Context, message string, data any, total int64, page, limit int) {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      true,
		"message":     message,
		"data":        data,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages,
	})
}
