package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

// PromotionController covers coupons, offers and the products attached to
// an offer.
type PromotionController struct{}

func NewPromotionController() *PromotionController { return &PromotionController{} }

// ----- coupons -----

type couponIn struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	ExpiredDate      string   `json:"expired_date"` // YYYY-MM-DD
	MinPurchasePrice *float64 `json:"min_purchase_price"`
	DiscountType     string   `json:"discount_type"`
	Discount         *float64 `json:"discount"`
	Status           string   `json:"status"`
}

func (ctl *PromotionController) AddOrEditCoupon(c *gin.Context) {
	var in couponIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid coupon payload")
		return
	}

	db := configs.DB()

	if in.DiscountType != "" && in.DiscountType != "amount" && in.DiscountType != "percentage" {
		resp.Fail(c, "discount_type must be amount or percentage")
		return
	}

	var expired *time.Time
	if in.ExpiredDate != "" {
		t, err := time.Parse("2006-01-02", in.ExpiredDate)
		if err != nil {
			resp.BadRequest(c, "expired_date must be YYYY-MM-DD")
			return
		}
		expired = &t
	}

	// code must stay unique across other coupons
	if in.Code != "" {
		var count int64
		q := db.Model(&entity.Coupon{}).Where("code = ?", in.Code)
		if in.ID > 0 {
			q = q.Where("id <> ?", in.ID)
		}
		if err := q.Count(&count).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		if count > 0 {
			resp.Fail(c, "Coupon code already exists")
			return
		}
	}

	if in.ID == 0 {
		if in.Name == "" || in.Code == "" || in.Discount == nil {
			resp.Fail(c, "Name, code and discount are required")
			return
		}
		coupon := entity.Coupon{
			Name:         in.Name,
			Code:         in.Code,
			ExpiredDate:  expired,
			DiscountType: "amount",
			Discount:     *in.Discount,
			Status:       utils.NormalizeStatus(in.Status, "active"),
		}
		if in.MinPurchasePrice != nil {
			coupon.MinPurchasePrice = *in.MinPurchasePrice
		}
		if in.DiscountType != "" {
			coupon.DiscountType = in.DiscountType
		}
		if err := db.Create(&coupon).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, "Coupon created successfully", coupon)
		return
	}

	var coupon entity.Coupon
	if err := db.First(&coupon, in.ID).Error; err != nil {
		resp.NotFound(c, "Coupon not found")
		return
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Code != "" {
		updates["code"] = in.Code
	}
	if expired != nil {
		updates["expired_date"] = *expired
	}
	if in.MinPurchasePrice != nil {
		updates["min_purchase_price"] = *in.MinPurchasePrice
	}
	if in.DiscountType != "" {
		updates["discount_type"] = in.DiscountType
	}
	if in.Discount != nil {
		updates["discount"] = *in.Discount
	}
	if in.Status != "" {
		updates["status"] = utils.NormalizeStatus(in.Status, coupon.Status)
	}
	if len(updates) > 0 {
		if err := db.Model(&coupon).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if err := db.First(&coupon, coupon.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Coupon updated successfully", coupon)
}

func (ctl *PromotionController) ListCoupons(c *gin.Context) {
	listSimple(c, &[]entity.Coupon{}, "Coupons fetched successfully", "code", true)
}

func (ctl *PromotionController) DeleteCoupon(c *gin.Context) {
	res := configs.DB().Delete(&entity.Coupon{}, paramID(c))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Coupon not found")
		return
	}
	resp.Message(c, "Coupon deleted successfully")
}

// ----- offers -----

type offerIn struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	OfferPercentage *float64 `json:"offer_percentage"`
	EndTime         string   `json:"end_time"` // RFC 3339
	Status          string   `json:"status"`
}

func (ctl *PromotionController) AddOrEditOffer(c *gin.Context) {
	var in offerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid offer payload")
		return
	}

	db := configs.DB()

	var endTime *time.Time
	if in.EndTime != "" {
		t, err := time.Parse(time.RFC3339, in.EndTime)
		if err != nil {
			resp.BadRequest(c, "end_time must be RFC 3339")
			return
		}
		endTime = &t
	}

	if in.ID == 0 {
		if in.Title == "" || in.OfferPercentage == nil {
			resp.Fail(c, "Title and offer_percentage are required")
			return
		}
		offer := entity.Offer{
			Title:           in.Title,
			Description:     in.Description,
			OfferPercentage: *in.OfferPercentage,
			EndTime:         endTime,
			Status:          utils.NormalizeStatus(in.Status, "active"),
		}
		if err := db.Create(&offer).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, "Offer created successfully", offer)
		return
	}

	var offer entity.Offer
	if err := db.First(&offer, in.ID).Error; err != nil {
		resp.NotFound(c, "Offer not found")
		return
	}

	updates := map[string]any{}
	if in.Title != "" {
		updates["title"] = in.Title
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.OfferPercentage != nil {
		updates["offer_percentage"] = *in.OfferPercentage
	}
	if endTime != nil {
		updates["end_time"] = *endTime
	}
	if in.Status != "" {
		updates["status"] = utils.NormalizeStatus(in.Status, offer.Status)
	}
	if len(updates) > 0 {
		if err := db.Model(&offer).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if err := db.First(&offer, offer.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Offer updated successfully", offer)
}

func (ctl *PromotionController) ListOffers(c *gin.Context) {
	var offers []entity.Offer
	err := configs.DB().
		Preload("OfferProducts").
		Preload("OfferProducts.Product").
		Order("id DESC").
		Find(&offers).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Offers fetched successfully", offers)
}

func (ctl *PromotionController) DeleteOffer(c *gin.Context) {
	db := configs.DB()

	var offer entity.Offer
	if err := db.First(&offer, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Offer not found")
		return
	}

	if err := db.Where("offer_id = ?", offer.ID).Delete(&entity.OfferProduct{}).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Delete(&offer).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Offer deleted successfully")
}

// ----- offer products -----

type offerProductIn struct {
	OfferID    uint   `json:"offer_id" binding:"required"`
	ProductIDs []uint `json:"product_ids" binding:"required"`
}

// AddOfferProducts attaches products to an offer, skipping ones already
// attached.
func (ctl *PromotionController) AddOfferProducts(c *gin.Context) {
	var in offerProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "offer_id and product_ids are required")
		return
	}

	db := configs.DB()
	if err := db.First(&entity.Offer{}, in.OfferID).Error; err != nil {
		resp.Fail(c, "Offer not found")
		return
	}

	for _, productID := range in.ProductIDs {
		if err := db.First(&entity.Product{}, productID).Error; err != nil {
			resp.Fail(c, "Product not found")
			return
		}

		var count int64
		if err := db.Model(&entity.OfferProduct{}).
			Where("offer_id = ? AND product_id = ?", in.OfferID, productID).
			Count(&count).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		if count > 0 {
			continue
		}
		row := entity.OfferProduct{OfferID: in.OfferID, ProductID: productID}
		if err := db.Create(&row).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.Message(c, "Offer products saved successfully")
}

func (ctl *PromotionController) DeleteOfferProduct(c *gin.Context) {
	res := configs.DB().Delete(&entity.OfferProduct{}, paramID(c))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Offer product not found")
		return
	}
	resp.Message(c, "Offer product removed")
}
