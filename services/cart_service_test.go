package services

import (
	"math"
	"testing"

	"foodigo/entity"
	"foodigo/repository"
)

func seedCartFixtures(t *testing.T, svc *CartService) (userID uint, product entity.Product, size entity.ProductSize, cheese, bacon entity.Addon) {
	t.Helper()
	db := svc.DB

	user := entity.User{Name: "Jane", Email: "jane@example.com", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	category := entity.FoodCategory{Name: "Burgers", Slug: "burgers", Status: "active"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	restaurant := entity.Restaurant{Name: "Grill House", Slug: "grill-house", ApprovalStatus: "approved"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}

	product = entity.Product{
		CategoryID:   category.ID,
		RestaurantID: restaurant.ID,
		Name:         "Classic Burger",
		Slug:         "classic-burger",
		Price:        9.50,
		Visibility:   "visible",
		Status:       "active",
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	size = entity.ProductSize{ProductID: product.ID, SizeName: "Large", Price: 12.00}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("create size: %v", err)
	}

	cheese = entity.Addon{Name: "Extra Cheese", Price: 3.00, Status: "active"}
	bacon = entity.Addon{Name: "Bacon", Price: 1.50, Status: "active"}
	if err := db.Create(&cheese).Error; err != nil {
		t.Fatalf("create addon: %v", err)
	}
	if err := db.Create(&bacon).Error; err != nil {
		t.Fatalf("create addon: %v", err)
	}
	for _, addonID := range []uint{cheese.ID, bacon.ID} {
		link := entity.ProductAddon{ProductID: product.ID, AddonID: addonID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("link addon: %v", err)
		}
	}

	return user.ID, product, size, cheese, bacon
}

func TestCartPricingWithSizeAndAddons(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, size, cheese, bacon := seedCartFixtures(t, svc)

	in := &AddToCartIn{
		ProductID: product.ID,
		SizeID:    &size.ID,
		Quantity:  2,
		Addons: []CartAddonIn{
			{AddonID: cheese.ID, Quantity: 2},
			{AddonID: bacon.ID, Quantity: 1},
		},
	}

	if err := svc.Add(userID, in); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	totals, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(totals.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(totals.Items))
	}

	// (12.00 + (3.00*2 + 1.50*1)) * 2 = 39.00
	line := totals.Items[0]
	if line.UnitPrice != 12.00 {
		t.Errorf("unit price = %.2f, want 12.00", line.UnitPrice)
	}
	if math.Abs(line.LineTotal-39.00) > 1e-9 {
		t.Errorf("line total = %.2f, want 39.00", line.LineTotal)
	}
	if math.Abs(totals.Total-39.00) > 1e-9 {
		t.Errorf("cart total = %.2f, want 39.00", totals.Total)
	}
}

func TestCartOfferPriceUsedWithoutSize(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, _, _, _ := seedCartFixtures(t, svc)
	if err := db.Model(&entity.Product{}).Where("id = ?", product.ID).
		Update("offer_price", 7.25).Error; err != nil {
		t.Fatalf("set offer price: %v", err)
	}

	if err := svc.Add(userID, &AddToCartIn{ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	totals, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if math.Abs(totals.Total-21.75) > 1e-9 {
		t.Errorf("cart total = %.2f, want 21.75", totals.Total)
	}
}

func TestCartMergesSameProductAndSize(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, size, _, _ := seedCartFixtures(t, svc)

	if err := svc.Add(userID, &AddToCartIn{ProductID: product.ID, SizeID: &size.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(userID, &AddToCartIn{ProductID: product.ID, SizeID: &size.ID, Quantity: 2}); err != nil {
		t.Fatalf("second add: %v", err)
	}
	// no size selected, separate line
	if err := svc.Add(userID, &AddToCartIn{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("third add: %v", err)
	}

	totals, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(totals.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(totals.Items))
	}
	if totals.Items[0].Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", totals.Items[0].Quantity)
	}
}

func TestCartRejectsForeignSize(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, _, _, _ := seedCartFixtures(t, svc)

	bogus := uint(9999)
	err := svc.Add(userID, &AddToCartIn{ProductID: product.ID, SizeID: &bogus, Quantity: 1})
	if err == nil {
		t.Fatal("expected error for size of another product")
	}
}

func TestCartRejectsUnlinkedAddon(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, _, _, _ := seedCartFixtures(t, svc)

	// exists as an addon but is not linked to this product
	mayo := entity.Addon{Name: "Mayo", Price: 0.50, Status: "active"}
	if err := db.Create(&mayo).Error; err != nil {
		t.Fatalf("create addon: %v", err)
	}

	for _, addonID := range []uint{mayo.ID, 99999} {
		err := svc.Add(userID, &AddToCartIn{
			ProductID: product.ID,
			Quantity:  1,
			Addons:    []CartAddonIn{{AddonID: addonID, Quantity: 2}},
		})
		if err == nil {
			t.Fatalf("expected error for addon %d not linked to the product", addonID)
		}
	}

	var lines, addons int64
	db.Model(&entity.Cart{}).Where("user_id = ?", userID).Count(&lines)
	db.Model(&entity.CartAddon{}).Count(&addons)
	if lines != 0 || addons != 0 {
		t.Errorf("rejected add wrote rows: %d lines, %d addon rows, want 0/0", lines, addons)
	}
}

func TestCartClearRemovesAddonRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db))

	userID, product, size, cheese, _ := seedCartFixtures(t, svc)

	in := &AddToCartIn{
		ProductID: product.ID,
		SizeID:    &size.ID,
		Quantity:  1,
		Addons:    []CartAddonIn{{AddonID: cheese.ID, Quantity: 1}},
	}
	if err := svc.Add(userID, in); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	if err := svc.Clear(userID); err != nil {
		t.Fatalf("clear cart: %v", err)
	}

	var lines, addons int64
	db.Model(&entity.Cart{}).Where("user_id = ?", userID).Count(&lines)
	db.Model(&entity.CartAddon{}).Count(&addons)
	if lines != 0 || addons != 0 {
		t.Errorf("after clear: %d lines, %d addon rows, want 0/0", lines, addons)
	}
}
