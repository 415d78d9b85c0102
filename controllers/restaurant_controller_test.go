package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
)

func cityRouter() *gin.Engine {
	ctl := NewRestaurantController()
	r := gin.New()
	r.GET("/cities", ctl.ListCities)
	return r
}

func TestListCitiesIgnoresStatusQuery(t *testing.T) {
	setupTestDB(t)
	db := configs.DB()

	for _, name := range []string{"Dhaka", "Chittagong"} {
		if err := db.Create(&entity.City{Name: name}).Error; err != nil {
			t.Fatalf("seed city: %v", err)
		}
	}

	r := cityRouter()

	// cities carry no status column; the filter must be a no-op, not a 500
	w := get(r, "/cities?status=active")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["status"] != true {
		t.Errorf("status = %v, want true", body["status"])
	}
	if body["total"].(float64) != 2 {
		t.Errorf("total = %v, want 2", body["total"])
	}

	body = decode(t, get(r, "/cities?search=dha"))
	if body["total"].(float64) != 1 {
		t.Errorf("search total = %v, want 1", body["total"])
	}
}
