package controllers

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
)

func deliverymanRouter() *gin.Engine {
	ctl := NewDeliverymanController()
	r := gin.New()
	r.POST("/addOrEditDeliveryman", ctl.AddOrEdit)
	return r
}

func TestDeliverymanEmailUniqueness(t *testing.T) {
	setupTestDB(t)
	db := configs.DB()
	r := deliverymanRouter()

	w := postForm(r, "/addOrEditDeliveryman", url.Values{
		"first_name": {"Karim"},
		"email":      {"karim@example.com"},
	})
	if body := decode(t, w); body["status"] != true {
		t.Fatalf("create failed: %v", body["message"])
	}

	// same email, different case
	w = postForm(r, "/addOrEditDeliveryman", url.Values{
		"first_name": {"Other"},
		"email":      {"Karim@Example.com"},
	})
	if body := decode(t, w); body["status"] != false {
		t.Errorf("duplicate email accepted: %v", body)
	}

	var count int64
	db.Model(&entity.Deliveryman{}).Count(&count)
	if count != 1 {
		t.Errorf("deliverymen = %d, want 1", count)
	}

	// editing an unrelated field keeps the own row out of the check
	var dm entity.Deliveryman
	if err := db.First(&dm).Error; err != nil {
		t.Fatalf("load deliveryman: %v", err)
	}
	w = postForm(r, "/addOrEditDeliveryman", url.Values{
		"id":           {fmt.Sprintf("%d", dm.ID)},
		"phone_number": {"01700000000"},
	})
	if body := decode(t, w); body["status"] != true {
		t.Errorf("edit rejected by own email: %v", body["message"])
	}
}
