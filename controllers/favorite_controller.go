package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

type FavoriteController struct{}

func NewFavoriteController() *FavoriteController { return &FavoriteController{} }

type toggleFavoriteIn struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// Toggle adds the product to favorites, or removes it when already there.
func (ctl *FavoriteController) Toggle(c *gin.Context) {
	var in toggleFavoriteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "product_id is required")
		return
	}

	db := configs.DB()
	userID := utils.CurrentUserID(c)

	if err := db.First(&entity.Product{}, in.ProductID).Error; err != nil {
		resp.Fail(c, "Product not found")
		return
	}

	var fav entity.Favorite
	err := db.Where("user_id = ? AND product_id = ?", userID, in.ProductID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = entity.Favorite{UserID: userID, ProductID: in.ProductID}
		if err := db.Create(&fav).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, "Added to favorites", gin.H{"favorited": true})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if err := db.Delete(&fav).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Removed from favorites", gin.H{"favorited": false})
}

func (ctl *FavoriteController) List(c *gin.Context) {
	q := configs.DB().Model(&entity.Favorite{}).
		Where("user_id = ?", utils.CurrentUserID(c)).
		Preload("Product").
		Preload("Product.Restaurant")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	page, limit, paged := utils.Pagination(c)
	if paged {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var favorites []entity.Favorite
	if err := q.Order("id DESC").Find(&favorites).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Favorites fetched successfully", favorites, total, page, limit)
		return
	}
	resp.List(c, "Favorites fetched successfully", favorites, total)
}
