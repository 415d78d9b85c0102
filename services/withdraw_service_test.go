package services

import (
	"testing"

	"foodigo/entity"
)

func TestWithdrawMethodRangeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawService(db)

	minAmount, maxAmount := 100.0, 50.0
	_, err := svc.AddOrEditSellerMethod(&WithdrawMethodIn{
		MethodName:    "Bank Transfer",
		MinimumAmount: &minAmount,
		MaximumAmount: &maxAmount,
	})
	if err == nil {
		t.Fatal("expected min > max to be rejected")
	}
}

func TestWithdrawMethodDeleteGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawService(db)

	method, err := svc.AddOrEditSellerMethod(&WithdrawMethodIn{MethodName: "Bank Transfer"})
	if err != nil {
		t.Fatalf("create method: %v", err)
	}

	restaurant := entity.Restaurant{Name: "Grill House", Slug: "grill-house"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	req := entity.SellerWithdrawRequest{
		RestaurantID:   restaurant.ID,
		MethodID:       method.ID,
		WithdrawAmount: 150,
		Status:         "pending",
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("create request: %v", err)
	}

	if err := svc.DeleteSellerMethod(method.ID); err == nil {
		t.Fatal("expected delete to be refused while requests exist")
	}

	if err := db.Delete(&req).Error; err != nil {
		t.Fatalf("remove request: %v", err)
	}
	if err := svc.DeleteSellerMethod(method.ID); err != nil {
		t.Fatalf("delete after requests removed: %v", err)
	}
}

func TestWithdrawRequestStatusTransition(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawService(db)

	method, err := svc.AddOrEditSellerMethod(&WithdrawMethodIn{MethodName: "Bank Transfer"})
	if err != nil {
		t.Fatalf("create method: %v", err)
	}
	restaurant := entity.Restaurant{Name: "Grill House", Slug: "grill-house"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	req := entity.SellerWithdrawRequest{
		RestaurantID:   restaurant.ID,
		MethodID:       method.ID,
		WithdrawAmount: 150,
		Status:         "pending",
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("create request: %v", err)
	}

	if _, err := svc.UpdateSellerRequestStatus(req.ID, "cancelled", ""); err == nil {
		t.Error("expected invalid status to be rejected")
	}

	updated, err := svc.UpdateSellerRequestStatus(req.ID, "approved", "ok")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != "approved" {
		t.Errorf("status = %q, want approved", updated.Status)
	}
	if updated.ProcessedAt == nil {
		t.Error("processed_at not stamped")
	}

	// decided requests stay decided
	if _, err := svc.UpdateSellerRequestStatus(req.ID, "rejected", ""); err == nil {
		t.Error("expected second transition to be refused")
	}
}
