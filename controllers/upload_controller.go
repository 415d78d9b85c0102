package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/pkg/resp"
	"foodigo/utils"
)

// UploadController is the generic upload surface the admin editor uses.
type UploadController struct{}

func NewUploadController() *UploadController { return &UploadController{} }

func (ctl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "others"
	}

	path, err := utils.SaveUpload(c, file, folder)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "File uploaded successfully", gin.H{"path": path})
}

type deleteFileIn struct {
	Path string `json:"path" binding:"required"`
}

func (ctl *UploadController) DeleteFile(c *gin.Context) {
	var in deleteFileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "path is required")
		return
	}

	utils.DeleteFile(in.Path)
	resp.Message(c, "File deleted successfully")
}
