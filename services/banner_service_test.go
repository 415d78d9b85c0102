package services

import (
	"testing"

	"foodigo/entity"
)

func TestPromotionalBannerBatchUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewBannerService(db)

	_, err := svc.UpsertPromotionalBanners([]PromotionalBannerIn{
		{SectionKey: "hero", Title: "Big deals", Image: "assets/banners/hero.jpg", Status: "active"},
		{SectionKey: "footer", Title: "Download the app", Status: "inactive"},
	})
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}

	var total int64
	db.Model(&entity.PromotionalBanner{}).Count(&total)
	if total != 2 {
		t.Fatalf("banners = %d, want 2", total)
	}

	// same keys update in place and report the replaced image
	stale, err := svc.UpsertPromotionalBanners([]PromotionalBannerIn{
		{SectionKey: "hero", Image: "assets/banners/hero-2.jpg"},
	})
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if len(stale) != 1 || stale[0] != "assets/banners/hero.jpg" {
		t.Errorf("stale = %v, want the replaced hero image", stale)
	}

	db.Model(&entity.PromotionalBanner{}).Count(&total)
	if total != 2 {
		t.Errorf("banners = %d, want 2 after upsert", total)
	}

	var hero entity.PromotionalBanner
	db.Where("section_key = ?", "hero").First(&hero)
	if hero.Image != "assets/banners/hero-2.jpg" {
		t.Errorf("hero image = %q", hero.Image)
	}
	if hero.Title != "Big deals" {
		t.Errorf("title lost on patch: %q", hero.Title)
	}
}

func TestPromotionalBannerBatchIsAtomic(t *testing.T) {
	db := newTestDB(t)
	svc := NewBannerService(db)

	_, err := svc.UpsertPromotionalBanners([]PromotionalBannerIn{
		{SectionKey: "hero", Title: "Big deals"},
		{SectionKey: "", Title: "Broken row"},
	})
	if err == nil {
		t.Fatal("expected missing section_key to fail the batch")
	}

	var total int64
	db.Model(&entity.PromotionalBanner{}).Count(&total)
	if total != 0 {
		t.Errorf("banners = %d, want 0 after rollback", total)
	}
}

func TestActivePromotionalBannersOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := NewBannerService(db)

	two, one := 2, 1
	_, err := svc.UpsertPromotionalBanners([]PromotionalBannerIn{
		{SectionKey: "b", Status: "active", DisplayOrder: &two},
		{SectionKey: "a", Status: "active", DisplayOrder: &one},
		{SectionKey: "c", Status: "inactive"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	banners, err := svc.ActivePromotionalBanners()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(banners) != 2 {
		t.Fatalf("active = %d, want 2", len(banners))
	}
	if banners[0].SectionKey != "a" || banners[1].SectionKey != "b" {
		t.Errorf("order = %s,%s; want a,b", banners[0].SectionKey, banners[1].SectionKey)
	}
}
