package controllers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/services"
	"foodigo/utils"
)

// ProductController covers the admin side of food categories, products and
// addons.
type ProductController struct {
	Service *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Service: s}
}

// ----- food categories -----

func (ctl *ProductController) AddOrEditFoodCategory(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")
	name := c.PostForm("name")

	var stale string
	var category entity.FoodCategory

	if id == 0 {
		if name == "" {
			resp.Fail(c, "Name is required")
			return
		}
		slug := utils.Slugify(name)
		if taken(db, &entity.FoodCategory{}, slug, 0) {
			resp.Fail(c, "A category with this name already exists")
			return
		}
		category = entity.FoodCategory{
			Name:   name,
			Slug:   slug,
			Status: utils.NormalizeStatus(c.PostForm("status"), "active"),
		}
	} else {
		if err := db.First(&category, id).Error; err != nil {
			resp.NotFound(c, "Category not found")
			return
		}
		if name != "" && name != category.Name {
			slug := utils.Slugify(name)
			if taken(db, &entity.FoodCategory{}, slug, category.ID) {
				resp.Fail(c, "A category with this name already exists")
				return
			}
			category.Name = name
			category.Slug = slug
		}
		if s := c.PostForm("status"); s != "" {
			category.Status = utils.NormalizeStatus(s, category.Status)
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "categories")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = category.Image
		category.Image = path
	}

	if err := db.Save(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Category saved successfully", category)
}

func (ctl *ProductController) ListFoodCategories(c *gin.Context) {
	listSimple(c, &[]entity.FoodCategory{}, "Categories fetched successfully", "name", true)
}

// DeleteFoodCategory refuses when products still reference the category.
func (ctl *ProductController) DeleteFoodCategory(c *gin.Context) {
	db := configs.DB()

	var category entity.FoodCategory
	if err := db.First(&category, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Category not found")
		return
	}

	var count int64
	if err := db.Model(&entity.Product{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Category has products and cannot be deleted")
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(category.Image)
	resp.Message(c, "Category deleted successfully")
}

// ----- products -----

// AddOrEditProduct accepts multipart form data. sizes, specifications and
// addon_ids arrive as JSON strings inside their form fields.
func (ctl *ProductController) AddOrEditProduct(c *gin.Context) {
	in := services.ProductIn{
		ID:               formUint(c, "id"),
		CategoryID:       formUint(c, "category_id"),
		RestaurantID:     formUint(c, "restaurant_id"),
		Name:             c.PostForm("name"),
		ShortDescription: c.PostForm("short_description"),
		Price:            formFloat(c, "price"),
		OfferPrice:       formFloat(c, "offer_price"),
		Visibility:       c.PostForm("visibility"),
		Status:           c.PostForm("status"),
	}
	if v := c.PostForm("is_featured"); v != "" {
		b := utils.ParseBool(v, false)
		in.IsFeatured = &b
	}

	if raw := c.PostForm("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Sizes); err != nil {
			resp.BadRequest(c, "sizes must be a JSON array")
			return
		}
	}
	if raw := c.PostForm("specifications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Specifications); err != nil {
			resp.BadRequest(c, "specifications must be a JSON array")
			return
		}
	}
	if raw := c.PostForm("addon_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.AddonIDs); err != nil {
			resp.BadRequest(c, "addon_ids must be a JSON array")
			return
		}
	}

	var stale string
	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "products")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.Image = path
		if in.ID != 0 {
			var existing entity.Product
			if err := configs.DB().First(&existing, in.ID).Error; err == nil {
				stale = existing.Image
			}
		}
	}

	product, err := ctl.Service.AddOrEdit(&in)
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	if stale != "" && stale != product.Image {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Product saved successfully", product)
}

func (ctl *ProductController) ListProducts(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.Product{}).Preload("Restaurant").Preload("FoodCategory")

	if id := c.Query("category_id"); id != "" {
		q = q.Where("category_id = ?", id)
	}
	if id := c.Query("restaurant_id"); id != "" {
		q = q.Where("restaurant_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
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

	var products []entity.Product
	if err := q.Order("id DESC").Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, "Products fetched successfully", products, total, page, limit)
		return
	}
	resp.List(c, "Products fetched successfully", products, total)
}

func (ctl *ProductController) GetSingleProduct(c *gin.Context) {
	var product entity.Product
	err := configs.DB().
		Preload("Restaurant").Preload("FoodCategory").
		Preload("Sizes").Preload("Specifications").
		Preload("Addons").Preload("Addons.Addon").
		First(&product, paramID(c)).Error
	if err != nil {
		resp.NotFound(c, "Product not found")
		return
	}
	resp.OK(c, "Product fetched successfully", product)
}

func (ctl *ProductController) UpdateProductVisibility(c *gin.Context) {
	var in struct {
		Visibility string `json:"visibility" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "visibility is required")
		return
	}

	if err := ctl.Service.UpdateVisibility(paramID(c), in.Visibility); err != nil {
		resp.Fail(c, err.Error())
		return
	}
	resp.Message(c, "Product visibility updated")
}

func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	image, err := ctl.Service.Delete(paramID(c))
	if err != nil {
		resp.Fail(c, err.Error())
		return
	}
	utils.DeleteFile(image)
	resp.Message(c, "Product deleted successfully")
}

// ----- addons -----

type addonIn struct {
	ID           uint     `json:"id"`
	RestaurantID *uint    `json:"restaurant_id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	Status       string   `json:"status"`
}

func (ctl *ProductController) AddOrEditAddon(c *gin.Context) {
	var in addonIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid addon payload")
		return
	}

	db := configs.DB()

	if in.RestaurantID != nil {
		if err := db.First(&entity.Restaurant{}, *in.RestaurantID).Error; err != nil {
			resp.Fail(c, "Restaurant not found")
			return
		}
	}

	if in.ID == 0 {
		if in.Name == "" || in.Price == nil {
			resp.Fail(c, "Name and price are required")
			return
		}
		addon := entity.Addon{
			RestaurantID: in.RestaurantID,
			Name:         in.Name,
			Price:        *in.Price,
			Status:       utils.NormalizeStatus(in.Status, "active"),
		}
		if err := db.Create(&addon).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, "Addon created successfully", addon)
		return
	}

	var addon entity.Addon
	if err := db.First(&addon, in.ID).Error; err != nil {
		resp.NotFound(c, "Addon not found")
		return
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.RestaurantID != nil {
		updates["restaurant_id"] = *in.RestaurantID
	}
	if in.Status != "" {
		updates["status"] = utils.NormalizeStatus(in.Status, addon.Status)
	}
	if len(updates) > 0 {
		if err := db.Model(&addon).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if err := db.First(&addon, addon.ID).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Addon updated successfully", addon)
}

func (ctl *ProductController) ListAddons(c *gin.Context) {
	listSimple(c, &[]entity.Addon{}, "Addons fetched successfully", "name", true)
}

func (ctl *ProductController) DeleteAddon(c *gin.Context) {
	db := configs.DB()

	var addon entity.Addon
	if err := db.First(&addon, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Addon not found")
		return
	}

	var count int64
	if err := db.Model(&entity.ProductAddon{}).Where("addon_id = ?", addon.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Addon is attached to products and cannot be deleted")
		return
	}

	if err := db.Delete(&addon).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Addon deleted successfully")
}
