package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

// HomeController serves the public storefront endpoints. When the request
// carries a valid token, products gain an is_favorite flag.
type HomeController struct {
	Banners *services.BannerService
}

func NewHomeController(b *services.BannerService) *HomeController {
	return &HomeController{Banners: b}
}

type productOut struct {
	entity.Product
	IsFavorite bool `json:"is_favorite"`
}

func (ctl *HomeController) Home(c *gin.Context) {
	db := configs.DB()

	banners, err := ctl.Banners.ActivePromotionalBanners()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var dealBanners []entity.OfferDealBanner
	if err := db.Where("status = ?", "active").
		Order("display_order ASC, id ASC").
		Find(&dealBanners).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var categories []entity.FoodCategory
	if err := db.Where("status = ?", "active").Order("name ASC").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var cuisines []entity.Cuisine
	if err := db.Where("status = ?", "active").Order("name ASC").Find(&cuisines).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var featured []entity.Product
	if err := visibleProducts(db).Where("is_featured = ?", true).
		Preload("Restaurant").Limit(12).Find(&featured).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var restaurants []entity.Restaurant
	if err := db.Where("approval_status = ?", "approved").
		Where("is_featured = ?", true).
		Preload("City").Preload("Cuisine").
		Limit(12).Find(&restaurants).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, "Home data fetched successfully", gin.H{
		"promotional_banners":  banners,
		"offer_deal_banners":   dealBanners,
		"food_categories":      categories,
		"cuisines":             cuisines,
		"featured_products":    flagFavorites(c, featured),
		"featured_restaurants": restaurants,
	})
}

func (ctl *HomeController) FoodCategories(c *gin.Context) {
	var categories []entity.FoodCategory
	if err := configs.DB().Where("status = ?", "active").
		Order("name ASC").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Food categories fetched successfully", categories)
}

func (ctl *HomeController) Cuisines(c *gin.Context) {
	var cuisines []entity.Cuisine
	if err := configs.DB().Where("status = ?", "active").
		Order("name ASC").Find(&cuisines).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Cuisines fetched successfully", cuisines)
}

// Products lists visible products with optional category, restaurant and
// search filters. Without page+limit the full set comes back.
func (ctl *HomeController) Products(c *gin.Context) {
	q := visibleProducts(configs.DB()).Preload("Restaurant").Preload("FoodCategory")

	if id := c.Query("category_id"); id != "" {
		q = q.Where("category_id = ?", id)
	}
	if id := c.Query("restaurant_id"); id != "" {
		q = q.Where("restaurant_id = ?", id)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(name) LIKE ?", utils.Like(search))
	}

	var total int64
	if err := q.Model(&entity.Product{}).Count(&total).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	page, limit, paged := utils.Pagination(c)
	if paged {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var products []entity.Product
	if err := q.Order("id DESC").Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	out := flagFavorites(c, products)
	if paged {
		resp.Paginated(c, "Products fetched successfully", out, total, page, limit)
		return
	}
	resp.List(c, "Products fetched successfully", out, total)
}

func (ctl *HomeController) SingleProduct(c *gin.Context) {
	var product entity.Product
	err := visibleProducts(configs.DB()).
		Preload("Restaurant").Preload("FoodCategory").
		Preload("Sizes").Preload("Specifications").
		Preload("Addons").Preload("Addons.Addon").
		Where("slug = ?", c.Param("slug")).
		First(&product).Error
	if err != nil {
		resp.NotFound(c, "Product not found")
		return
	}

	out := flagFavorites(c, []entity.Product{product})
	resp.OK(c, "Product fetched successfully", out[0])
}

func (ctl *HomeController) Restaurants(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.Restaurant{}).
		Where("approval_status = ?", "approved").
		Preload("City").Preload("Cuisine")

	if id := c.Query("cuisine_id"); id != "" {
		q = q.Where("cuisine_id = ?", id)
	}
	if id := c.Query("city_id"); id != "" {
		q = q.Where("city_id = ?", id)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER(name) LIKE ?", utils.Like(search))
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

	var restaurants []entity.Restaurant
	if err := q.Order("id DESC").Find(&restaurants).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Restaurants fetched successfully", restaurants, total, page, limit)
		return
	}
	resp.List(c, "Restaurants fetched successfully", restaurants, total)
}

func (ctl *HomeController) SingleRestaurant(c *gin.Context) {
	var restaurant entity.Restaurant
	err := configs.DB().
		Where("slug = ? AND approval_status = ?", c.Param("slug"), "approved").
		Preload("City").Preload("Cuisine").
		First(&restaurant).Error
	if err != nil {
		resp.NotFound(c, "Restaurant not found")
		return
	}

	var products []entity.Product
	if err := visibleProducts(configs.DB()).
		Where("restaurant_id = ?", restaurant.ID).
		Preload("Sizes").
		Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, "Restaurant fetched successfully", gin.H{
		"restaurant": restaurant,
		"products":   flagFavorites(c, products),
	})
}

func visibleProducts(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ? AND status = ?", "visible", "active")
}

// flagFavorites marks the products the current user has favorited.
// Anonymous requests get is_favorite=false across the board.
func flagFavorites(c *gin.Context, products []entity.Product) []productOut {
	out := make([]productOut, 0, len(products))

	userID := utils.CurrentUserID(c)
	favored := map[uint]bool{}
	if userID != 0 && len(products) > 0 {
		ids := make([]uint, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		var favorites []entity.Favorite
		if err := configs.DB().
			Where("user_id = ? AND product_id IN ?", userID, ids).
			Find(&favorites).Error; err == nil {
			for _, f := range favorites {
				favored[f.ProductID] = true
			}
		}
	}

	for _, p := range products {
		out = append(out, productOut{Product: p, IsFavorite: favored[p.ID]})
	}
	return out
}
