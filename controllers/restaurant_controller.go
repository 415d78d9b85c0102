package controllers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

// RestaurantController covers the admin side of cuisines, cities and
// restaurants. Image-bearing endpoints take multipart form data.
type RestaurantController struct{}

func NewRestaurantController() *RestaurantController { return &RestaurantController{} }

// ----- cuisines -----

func (ctl *RestaurantController) AddOrEditCuisine(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")
	name := c.PostForm("name")

	var stale string
	var cuisine entity.Cuisine

	if id == 0 {
		if name == "" {
			resp.Fail(c, "Name is required")
			return
		}
		slug := utils.Slugify(name)
		if taken(db, &entity.Cuisine{}, slug, 0) {
			resp.Fail(c, "A cuisine with this name already exists")
			return
		}
		cuisine = entity.Cuisine{
			Name:   name,
			Slug:   slug,
			Status: utils.NormalizeStatus(c.PostForm("status"), "active"),
		}
	} else {
		if err := db.First(&cuisine, id).Error; err != nil {
			resp.NotFound(c, "Cuisine not found")
			return
		}
		if name != "" && name != cuisine.Name {
			slug := utils.Slugify(name)
			if taken(db, &entity.Cuisine{}, slug, cuisine.ID) {
				resp.Fail(c, "A cuisine with this name already exists")
				return
			}
			cuisine.Name = name
			cuisine.Slug = slug
		}
		if s := c.PostForm("status"); s != "" {
			cuisine.Status = utils.NormalizeStatus(s, cuisine.Status)
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "cuisines")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = cuisine.Image
		cuisine.Image = path
	}

	if err := db.Save(&cuisine).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "Cuisine saved successfully", cuisine)
}

func (ctl *RestaurantController) ListCuisines(c *gin.Context) {
	listSimple(c, &[]entity.Cuisine{}, "Cuisines fetched successfully", "name", true)
}

func (ctl *RestaurantController) DeleteCuisine(c *gin.Context) {
	db := configs.DB()

	var cuisine entity.Cuisine
	if err := db.First(&cuisine, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Cuisine not found")
		return
	}

	var count int64
	if err := db.Model(&entity.Restaurant{}).Where("cuisine_id = ?", cuisine.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Cuisine has restaurants and cannot be deleted")
		return
	}

	if err := db.Delete(&cuisine).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(cuisine.Image)
	resp.Message(c, "Cuisine deleted successfully")
}

// ----- cities -----

func (ctl *RestaurantController) AddOrEditCity(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")
	name := c.PostForm("name")

	var stale string
	var city entity.City

	if id == 0 {
		if name == "" {
			resp.Fail(c, "Name is required")
			return
		}
		city = entity.City{Name: name}
	} else {
		if err := db.First(&city, id).Error; err != nil {
			resp.NotFound(c, "City not found")
			return
		}
		if name != "" {
			city.Name = name
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, "cities")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = city.Image
		city.Image = path
	}

	if err := db.Save(&city).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if stale != "" {
		utils.DeleteFile(stale)
	}
	resp.OK(c, "City saved successfully", city)
}

func (ctl *RestaurantController) ListCities(c *gin.Context) {
	listSimple(c, &[]entity.City{}, "Cities fetched successfully", "name", false)
}

func (ctl *RestaurantController) DeleteCity(c *gin.Context) {
	db := configs.DB()

	var city entity.City
	if err := db.First(&city, paramID(c)).Error; err != nil {
		resp.NotFound(c, "City not found")
		return
	}

	var count int64
	if err := db.Model(&entity.Restaurant{}).Where("city_id = ?", city.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "City has restaurants and cannot be deleted")
		return
	}

	if err := db.Delete(&city).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(city.Image)
	resp.Message(c, "City deleted successfully")
}

// ----- restaurants -----

func (ctl *RestaurantController) AddOrEditRestaurant(c *gin.Context) {
	db := configs.DB()
	id := formUint(c, "id")
	name := c.PostForm("name")

	var stale []string
	var restaurant entity.Restaurant

	if id == 0 {
		if name == "" {
			resp.Fail(c, "Name is required")
			return
		}
		slug := utils.Slugify(name)
		if taken(db, &entity.Restaurant{}, slug, 0) {
			resp.Fail(c, "A restaurant with this name already exists")
			return
		}
		restaurant = entity.Restaurant{
			Name:           name,
			Slug:           slug,
			ApprovalStatus: "pending",
			DeliveryOrder:  true,
		}
	} else {
		if err := db.First(&restaurant, id).Error; err != nil {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		if name != "" && name != restaurant.Name {
			slug := utils.Slugify(name)
			if taken(db, &entity.Restaurant{}, slug, restaurant.ID) {
				resp.Fail(c, "A restaurant with this name already exists")
				return
			}
			restaurant.Name = name
			restaurant.Slug = slug
		}
	}

	for form, field := range map[string]*string{
		"whatsapp_phone":           &restaurant.WhatsappPhone,
		"address":                  &restaurant.Address,
		"owner_name":               &restaurant.OwnerName,
		"owner_email":              &restaurant.OwnerEmail,
		"owner_phone":              &restaurant.OwnerPhone,
		"account_name":             &restaurant.AccountName,
		"account_email":            &restaurant.AccountEmail,
		"opening_time":             &restaurant.OpeningTime,
		"closing_time":             &restaurant.ClosingTime,
		"min_food_processing_time": &restaurant.MinFoodProcessingTime,
		"max_food_processing_time": &restaurant.MaxFoodProcessingTime,
		"time_slot_seprated":       &restaurant.TimeSlotSeparated,
		"tags":                     &restaurant.Tags,
	} {
		if v := c.PostForm(form); v != "" {
			*field = v
		}
	}

	if v := formUint(c, "city_id"); v != 0 {
		if err := db.First(&entity.City{}, v).Error; err != nil {
			resp.Fail(c, "City not found")
			return
		}
		restaurant.CityID = &v
	}
	if v := formUint(c, "cuisine_id"); v != 0 {
		if err := db.First(&entity.Cuisine{}, v).Error; err != nil {
			resp.Fail(c, "Cuisine not found")
			return
		}
		restaurant.CuisineID = &v
	}
	if v := formFloat(c, "latitude"); v != nil {
		restaurant.Latitude = v
	}
	if v := formFloat(c, "longitude"); v != nil {
		restaurant.Longitude = v
	}
	if v := formFloat(c, "max_delivery_distance"); v != nil {
		d := int(*v)
		restaurant.MaxDeliveryDistance = &d
	}
	if v := c.PostForm("is_featured"); v != "" {
		restaurant.IsFeatured = utils.ParseBool(v, restaurant.IsFeatured)
	}
	if v := c.PostForm("pickup_order"); v != "" {
		restaurant.PickupOrder = utils.ParseBool(v, restaurant.PickupOrder)
	}
	if v := c.PostForm("delivery_order"); v != "" {
		restaurant.DeliveryOrder = utils.ParseBool(v, restaurant.DeliveryOrder)
	}
	if v := c.PostForm("is_trusted"); v != "" {
		restaurant.IsTrusted = utils.ParseBool(v, restaurant.IsTrusted)
	}
	if v := c.PostForm("account_password"); v != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		restaurant.AccountPassword = string(hashed)
	}

	if file, err := c.FormFile("logo_image"); err == nil {
		path, err := utils.SaveUpload(c, file, "restaurants")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = append(stale, restaurant.LogoImage)
		restaurant.LogoImage = path
	}
	if file, err := c.FormFile("cover_image"); err == nil {
		path, err := utils.SaveUpload(c, file, "restaurants")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		stale = append(stale, restaurant.CoverImage)
		restaurant.CoverImage = path
	}

	if err := db.Save(&restaurant).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	for _, path := range stale {
		utils.DeleteFile(path)
	}
	resp.OK(c, "Restaurant saved successfully", restaurant)
}

func (ctl *RestaurantController) ListRestaurants(c *gin.Context) {
	db := configs.DB()
	q := db.Model(&entity.Restaurant{}).Preload("City").Preload("Cuisine")

	if status := c.Query("approval_status"); status != "" {
		q = q.Where("approval_status = ?", status)
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

func (ctl *RestaurantController) UpdateApprovalStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Status must be pending, approved or rejected")
		return
	}

	res := configs.DB().Model(&entity.Restaurant{}).
		Where("id = ?", paramID(c)).
		Update("approval_status", in.Status)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "Restaurant not found")
		return
	}
	resp.Message(c, "Approval status updated")
}

func (ctl *RestaurantController) DeleteRestaurant(c *gin.Context) {
	db := configs.DB()

	var restaurant entity.Restaurant
	if err := db.First(&restaurant, paramID(c)).Error; err != nil {
		resp.NotFound(c, "Restaurant not found")
		return
	}

	var count int64
	if err := db.Model(&entity.Product{}).Where("restaurant_id = ?", restaurant.ID).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.Fail(c, "Restaurant has products and cannot be deleted")
		return
	}

	if err := db.Delete(&restaurant).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	utils.DeleteFile(restaurant.LogoImage)
	utils.DeleteFile(restaurant.CoverImage)
	resp.Message(c, "Restaurant deleted successfully")
}

// taken reports whether the slug is used by another row of the model.
func taken(db *gorm.DB, model any, slug string, excludeID uint) bool {
	var count int64
	q := db.Model(model).Where("slug = ?", slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return true
	}
	return count > 0
}

// listSimple answers a list endpoint with search on the given column and
// optional pagination. hasStatus enables the status query filter; models
// without a status column must pass false.
func listSimple(c *gin.Context, dest any, message, searchColumn string, hasStatus bool) {
	db := configs.DB()
	q := db.Model(dest)

	if status := c.Query("status"); hasStatus && status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("LOWER("+searchColumn+") LIKE ?", utils.Like(search))
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

	if err := q.Order("id DESC").Find(dest).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if paged {
		resp.Paginated(c, message, dest, total, page, limit)
		return
	}
	resp.List(c, message, dest, total)
}
