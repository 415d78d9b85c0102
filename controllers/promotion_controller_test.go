package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
)

func couponRouter() *gin.Engine {
	ctl := NewPromotionController()
	r := gin.New()
	r.POST("/addOrEditCoupon", ctl.AddOrEditCoupon)
	r.GET("/coupons", ctl.ListCoupons)
	r.DELETE("/coupon/:id", ctl.DeleteCoupon)
	return r
}

func TestCouponCreateAndPatch(t *testing.T) {
	setupTestDB(t)
	r := couponRouter()

	w := postJSON(r, "/addOrEditCoupon", gin.H{
		"name": "Welcome", "code": "WELCOME10", "discount": 10,
		"discount_type": "percentage",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}

	var coupon entity.Coupon
	if err := configs.DB().Where("code = ?", "WELCOME10").First(&coupon).Error; err != nil {
		t.Fatalf("coupon not stored: %v", err)
	}

	// patch only the discount; everything else stays
	w = postJSON(r, "/addOrEditCoupon", gin.H{"id": coupon.ID, "discount": 15})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, body = %s", w.Code, w.Body.String())
	}

	var patched entity.Coupon
	configs.DB().First(&patched, coupon.ID)
	if patched.Discount != 15 {
		t.Errorf("discount = %.0f, want 15", patched.Discount)
	}
	if patched.Name != "Welcome" || patched.Code != "WELCOME10" {
		t.Errorf("patch clobbered other fields: %+v", patched)
	}
	if patched.DiscountType != "percentage" {
		t.Errorf("discount_type = %q, want percentage", patched.DiscountType)
	}
}

func TestCouponDuplicateCodeIsStatusFalse(t *testing.T) {
	setupTestDB(t)
	r := couponRouter()

	postJSON(r, "/addOrEditCoupon", gin.H{"name": "First", "code": "SAVE5", "discount": 5})

	w := postJSON(r, "/addOrEditCoupon", gin.H{"name": "Second", "code": "SAVE5", "discount": 7})
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate: status = %d, want 200 with status:false", w.Code)
	}
	body := decode(t, w)
	if body["status"] != false {
		t.Errorf("status = %v, want false", body["status"])
	}

	var total int64
	configs.DB().Model(&entity.Coupon{}).Count(&total)
	if total != 1 {
		t.Errorf("coupons = %d, want 1 (no write on conflict)", total)
	}
}

func TestCouponListPagination(t *testing.T) {
	setupTestDB(t)
	r := couponRouter()

	for i := 0; i < 7; i++ {
		w := postJSON(r, "/addOrEditCoupon", gin.H{
			"name": fmt.Sprintf("Coupon %d", i), "code": fmt.Sprintf("CODE%d", i), "discount": 5,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %d: %s", i, w.Body.String())
		}
	}

	// without page+limit the whole set comes back
	body := decode(t, get(r, "/coupons"))
	if body["total"].(float64) != 7 {
		t.Errorf("total = %v, want 7", body["total"])
	}
	if body["totalPages"] != nil {
		t.Errorf("totalPages = %v, want null without pagination", body["totalPages"])
	}

	// 7 rows at 3 per page is 3 pages
	body = decode(t, get(r, "/coupons?page=2&limit=3"))
	if body["totalPages"].(float64) != 3 {
		t.Errorf("totalPages = %v, want 3", body["totalPages"])
	}
	if body["currentPage"].(float64) != 2 {
		t.Errorf("currentPage = %v, want 2", body["currentPage"])
	}
	if n := len(body["data"].([]any)); n != 3 {
		t.Errorf("page size = %d, want 3", n)
	}
}

func TestCouponDelete(t *testing.T) {
	setupTestDB(t)
	r := couponRouter()

	postJSON(r, "/addOrEditCoupon", gin.H{"name": "Gone", "code": "GONE", "discount": 5})

	var coupon entity.Coupon
	configs.DB().Where("code = ?", "GONE").First(&coupon)

	if w := del(r, fmt.Sprintf("/coupon/%d", coupon.ID)); w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	if w := del(r, fmt.Sprintf("/coupon/%d", coupon.ID)); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", w.Code)
	}
}
