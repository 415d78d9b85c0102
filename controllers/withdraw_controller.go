package controllers

import (
	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

// WithdrawController covers withdraw methods and requests for both sellers
// and deliverymen.
type WithdrawController struct {
	Service *services.WithdrawService
}

func NewWithdrawController(s *services.WithdrawService) *WithdrawController {
	return &WithdrawController{Service: s}
}

// ----- seller -----

func (ctl *WithdrawController) AddOrEditSellerMethod(c *gin.Context) {
	var in services.WithdrawMethodIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid withdraw method payload")
		return
	}

	method, err := ctl.Service.AddOrEditSellerMethod(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Withdraw method saved successfully", method)
}

func (ctl *WithdrawController) ListSellerMethods(c *gin.Context) {
	listSimple(c, &[]entity.SellerWithdrawMethod{}, "Withdraw methods fetched successfully", "method_name", true)
}

func (ctl *WithdrawController) DeleteSellerMethod(c *gin.Context) {
	if err := ctl.Service.DeleteSellerMethod(paramID(c)); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Withdraw method deleted successfully")
}

func (ctl *WithdrawController) ListSellerRequests(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.SellerWithdrawRequest{}).
		Preload("Restaurant").Preload("Method")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
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

	var requests []entity.SellerWithdrawRequest
	if err := q.Order("id DESC").Find(&requests).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Withdraw requests fetched successfully", requests, total, page, limit)
		return
	}
	resp.List(c, "Withdraw requests fetched successfully", requests, total)
}

type withdrawStatusIn struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

func (ctl *WithdrawController) UpdateSellerRequestStatus(c *gin.Context) {
	var in withdrawStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}

	req, err := ctl.Service.UpdateSellerRequestStatus(paramID(c), in.Status, in.Comment)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Withdraw request updated", req)
}

func (ctl *WithdrawController) DeleteSellerRequest(c *gin.Context) {
	var req entity.SellerWithdrawRequest
	if err := configs.DB().First(&req, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Withdraw request not found")
		return
	}
	if err := configs.DB().Delete(&req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Withdraw request deleted successfully")
}

// ----- delivery -----

func (ctl *WithdrawController) AddOrEditDeliveryMethod(c *gin.Context) {
	var in services.WithdrawMethodIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid withdraw method payload")
		return
	}

	method, err := ctl.Service.AddOrEditDeliveryMethod(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Withdraw method saved successfully", method)
}

func (ctl *WithdrawController) ListDeliveryMethods(c *gin.Context) {
	listSimple(c, &[]entity.DeliveryWithdrawMethod{}, "Withdraw methods fetched successfully", "method_name", true)
}

func (ctl *WithdrawController) DeleteDeliveryMethod(c *gin.Context) {
	if err := ctl.Service.DeleteDeliveryMethod(paramID(c)); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Withdraw method deleted successfully")
}

func (ctl *WithdrawController) ListDeliveryRequests(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.DeliveryWithdrawRequest{}).
		Preload("Deliveryman").Preload("Method")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
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

	var requests []entity.DeliveryWithdrawRequest
	if err := q.Order("id DESC").Find(&requests).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Withdraw requests fetched successfully", requests, total, page, limit)
		return
	}
	resp.List(c, "Withdraw requests fetched successfully", requests, total)
}

func (ctl *WithdrawController) UpdateDeliveryRequestStatus(c *gin.Context) {
	var in withdrawStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}

	req, err := ctl.Service.UpdateDeliveryRequestStatus(paramID(c), in.Status, in.Comment)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.OK(c, "Withdraw request updated", req)
}

func (ctl *WithdrawController) DeleteDeliveryRequest(c *gin.Context) {
	var req entity.DeliveryWithdrawRequest
	if err := configs.DB().First(&req, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Withdraw request not found")
		return
	}
	if err := configs.DB().Delete(&req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Withdraw request deleted successfully")
}
