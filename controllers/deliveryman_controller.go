package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

type DeliverymanController struct{}

func NewDeliverymanController() *DeliverymanController { return &DeliverymanController{} }

func (ctl *DeliverymanController) AddOrEdit(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")

	var stale string
	var dm entity.Deliveryman

	if id == 0 {
		if c.PostForm("first_name") == "" || c.PostForm("email") == "" {
			resp.Fail(c, "First name and email are required")
			return
		}
		dm = entity.Deliveryman{
			FirstName:   c.PostForm("first_name"),
			Email:       c.PostForm("email"),
			PhoneNumber: c.PostForm("phone_number"),
		}
	} else {
		if err := db.First(&dm, id).Error; err != nil {
			resp.NotFound(c, "Deliveryman not found")
			return
		}
		if v := c.PostForm("first_name"); v != "" {
			dm.FirstName = v
		}
		if v := c.PostForm("email"); v != "" {
			dm.Email = v
		}
		if v := c.PostForm("phone_number"); v != "" {
			dm.PhoneNumber = v
		}
	}

	if dm.Email != "" {
		var count int64
		q := db.Model(&entity.Deliveryman{}).Where("LOWER(email) = ?", strings.ToLower(dm.Email))
		if id > 0 {
			q = q.Where("id <> ?", id)
		}
		if err := q.Count(&count).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		if count > 0 {
			resp.Fail(c, "Email already in use")
			return
		}
	}

	if v := c.PostForm("password"); v != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		dm.Password = string(hashed)
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "deliverymen")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = dm.Image
		dm.Image = path
	}

	if err := db.Save(&dm).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Deliveryman saved successfully", dm)
}

func (ctl *DeliverymanController) List(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.Deliveryman{})

	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(email) LIKE ?", utils.Like(search), utils.Like(search))
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

	var deliverymen []entity.Deliveryman
	if err := q.Order("id DESC").Find(&deliverymen).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Deliverymen fetched successfully", deliverymen, total, page, limit)
		return
	}
	resp.List(c, "Deliverymen fetched successfully", deliverymen, total)
}

// Delete refuses while withdraw requests reference the deliveryman.
func (ctl *DeliverymanController) Delete(c *gin.Context) {
	db := configs.DB()

	var dm entity.Deliveryman
	if err := db.First(&dm, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Deliveryman not found")
		return
	}

	var count int64
	if err := db.Model(&entity.DeliveryWithdrawRequest{}).
		Where("deliveryman_id = ?", dm.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Deliveryman has withdraw requests and cannot be deleted")
		return
	}

	if err := db.Delete(&dm).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(dm.Image)
	resp.Message(c, "Deliveryman deleted successfully")
}
