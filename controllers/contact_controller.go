package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

type ContactController struct{}

func NewContactController() *ContactController { return &ContactController{} }

type contactMessageIn struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (ctl *ContactController) Send(c *gin.Context) {
	var in contactMessageIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Name, email and message are required")
		return
	}

	msg := entity.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  "pending",
	}
	if id := utils.CurrentUserID(c); id != 0 {
		msg.UserID = &id
	}
	if err := configs.DB().Create(&msg).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Message sent successfully", msg)
}

func (ctl *ContactController) List(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.ContactMessage{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", utils.Like(search), utils.Like(search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	page, limit, paged := utils.Pagination(c)
	if paged {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var messages []entity.ContactMessage
	if err := q.Order("id DESC").Find(&messages).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Contact messages fetched successfully", messages, total, page, limit)
		return
	}
	resp.List(c, "Contact messages fetched successfully", messages, total)
}

func (ctl *ContactController) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required,oneof=pending resolved"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Status must be pending or resolved")
		return
	}

	res := configs.DB().Model(&entity.ContactMessage{}).
		Where("id = ?", paramID(c)).
		Update("status", in.Status)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Message not found")
		return
	}
	resp.Message(c, "Message status updated")
}

func (ctl *ContactController) Delete(c *gin.Context) {
	res := configs.DB().Delete(&entity.ContactMessage{}, paramID(c))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Message not found")
		return
	}
	resp.Message(c, "Message deleted successfully")
}
