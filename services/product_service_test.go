package services

import (
	"testing"

	"foodigo/entity"
)

func productFixtures(t *testing.T, svc *ProductService) (entity.FoodCategory, entity.Restaurant) {
	t.Helper()

	category := entity.FoodCategory{Name: "Burgers", Slug: "burgers", Status: "active"}
	if err := svc.DB.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	restaurant := entity.Restaurant{Name: "Grill House", Slug: "grill-house", ApprovalStatus: "approved"}
	if err := svc.DB.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return category, restaurant
}

func TestProductAddOrEditPatchSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	category, restaurant := productFixtures(t, svc)

	price := 9.50
	created, err := svc.AddOrEdit(&ProductIn{
		CategoryID:   category.ID,
		RestaurantID: restaurant.ID,
		Name:         "Classic Burger",
		Price:        &price,
		Sizes:        []ProductSizeIn{{SizeName: "Large", Price: 12.00}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "classic-burger" {
		t.Errorf("slug = %q", created.Slug)
	}
	if len(created.Sizes) != 1 {
		t.Fatalf("sizes = %d, want 1", len(created.Sizes))
	}

	// only the supplied fields change; sizes stay untouched when nil
	newPrice := 10.00
	updated, err := svc.AddOrEdit(&ProductIn{ID: created.ID, Price: &newPrice})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Name != "Classic Burger" {
		t.Errorf("name lost on patch: %q", updated.Name)
	}
	if updated.Price != 10.00 {
		t.Errorf("price = %.2f, want 10.00", updated.Price)
	}
	if len(updated.Sizes) != 1 {
		t.Errorf("sizes = %d, want 1 (nil slice keeps children)", len(updated.Sizes))
	}

	// a non-nil slice replaces the children wholesale
	replaced, err := svc.AddOrEdit(&ProductIn{
		ID:    created.ID,
		Sizes: []ProductSizeIn{{SizeName: "Small", Price: 7.00}, {SizeName: "Large", Price: 12.50}},
	})
	if err != nil {
		t.Fatalf("replace sizes: %v", err)
	}
	if len(replaced.Sizes) != 2 {
		t.Errorf("sizes = %d, want 2", len(replaced.Sizes))
	}
}

func TestProductSlugConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	category, restaurant := productFixtures(t, svc)

	price := 9.50
	if _, err := svc.AddOrEdit(&ProductIn{
		CategoryID: category.ID, RestaurantID: restaurant.ID,
		Name: "Classic Burger", Price: &price,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.AddOrEdit(&ProductIn{
		CategoryID: category.ID, RestaurantID: restaurant.ID,
		Name: "Classic  Burger", Price: &price, // slugs collide
	})
	if err == nil {
		t.Fatal("expected slug conflict")
	}

	var total int64
	db.Model(&entity.Product{}).Count(&total)
	if total != 1 {
		t.Errorf("products = %d, want 1 (no write on conflict)", total)
	}
}

func TestProductDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	category, restaurant := productFixtures(t, svc)

	price := 9.50
	product, err := svc.AddOrEdit(&ProductIn{
		CategoryID: category.ID, RestaurantID: restaurant.ID,
		Name: "Classic Burger", Price: &price,
		Sizes:          []ProductSizeIn{{SizeName: "Large", Price: 12.00}},
		Specifications: []string{"Halal"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user := entity.User{Name: "Jane", Email: "jane@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&entity.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("create cart line: %v", err)
	}
	if err := db.Create(&entity.Favorite{UserID: user.ID, ProductID: product.ID}).Error; err != nil {
		t.Fatalf("create favorite: %v", err)
	}

	if _, err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for name, model := range map[string]any{
		"products":  &entity.Product{},
		"sizes":     &entity.ProductSize{},
		"specs":     &entity.ProductSpecification{},
		"cart":      &entity.Cart{},
		"favorites": &entity.Favorite{},
	} {
		var n int64
		db.Model(model).Count(&n)
		if n != 0 {
			t.Errorf("%s = %d, want 0 after delete", name, n)
		}
	}
}

func TestProductVisibilityToggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	category, restaurant := productFixtures(t, svc)

	price := 9.50
	product, err := svc.AddOrEdit(&ProductIn{
		CategoryID: category.ID, RestaurantID: restaurant.ID,
		Name: "Classic Burger", Price: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateVisibility(product.ID, "sideways"); err == nil {
		t.Error("expected invalid visibility to be rejected")
	}
	if err := svc.UpdateVisibility(product.ID, "hidden"); err != nil {
		t.Fatalf("hide: %v", err)
	}

	var got entity.Product
	db.First(&got, product.ID)
	if got.Visibility != "hidden" {
		t.Errorf("visibility = %q, want hidden", got.Visibility)
	}
}
