package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaveUpload stores a multipart file under assets/<folder>/ with a
// uuid-suffixed name and returns the relative path that gets persisted as
// the image column value.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, folder string) (string, error) {
	dir := filepath.Join("assets", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	name := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	path := filepath.Join(dir, name+"-"+uuid.NewString()+ext)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return filepath.ToSlash(path), nil
}

// DeleteFile removes a previously uploaded file. Best-effort: missing files
// and placeholder images are ignored, failures are logged and swallowed.
func DeleteFile(path string) bool {
	if path == "" || strings.Contains(path, "default-img.jpg") {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := os.Remove(path); err != nil {
		zap.L().Warn("delete file failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}
