package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/services"
)

func categoryRouter() *gin.Engine {
	ctl := NewProductController(services.NewProductService(configs.DB()))
	r := gin.New()
	r.GET("/food-categories", ctl.ListFoodCategories)
	r.DELETE("/food-category/:id", ctl.DeleteFoodCategory)
	return r
}

func TestDeleteCategoryGuardedByProducts(t *testing.T) {
	setupTestDB(t)
	db := configs.DB()

	category := entity.FoodCategory{Name: "Burgers", Slug: "burgers", Status: "active"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	restaurant := entity.Restaurant{Name: "Grill House", Slug: "grill-house"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	product := entity.Product{
		CategoryID: category.ID, RestaurantID: restaurant.ID,
		Name: "Classic Burger", Slug: "classic-burger", Price: 9.50,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	r := categoryRouter()

	w := del(r, fmt.Sprintf("/food-category/%d", category.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("guarded delete: status = %d, want 200 with status:false", w.Code)
	}
	if body := decode(t, w); body["status"] != false {
		t.Errorf("status = %v, want false while products exist", body["status"])
	}

	// release the guard
	if err := db.Unscoped().Delete(&product).Error; err != nil {
		t.Fatalf("remove product: %v", err)
	}

	w = del(r, fmt.Sprintf("/food-category/%d", category.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	if body := decode(t, w); body["status"] != true {
		t.Errorf("status = %v, want true after products removed", body["status"])
	}

	var count int64
	db.Model(&entity.FoodCategory{}).Count(&count)
	if count != 0 {
		t.Errorf("categories = %d, want 0", count)
	}
}

func TestListCategoriesStatusFilter(t *testing.T) {
	setupTestDB(t)
	db := configs.DB()

	for i, status := range []string{"active", "active", "inactive"} {
		c := entity.FoodCategory{
			Name: fmt.Sprintf("Cat %d", i), Slug: fmt.Sprintf("cat-%d", i), Status: status,
		}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	r := categoryRouter()

	body := decode(t, get(r, "/food-categories?status=active"))
	if body["total"].(float64) != 2 {
		t.Errorf("active total = %v, want 2", body["total"])
	}

	body = decode(t, get(r, "/food-categories"))
	if body["total"].(float64) != 3 {
		t.Errorf("total = %v, want 3", body["total"])
	}
}
