package services

import (
	"testing"

	"foodigo/entity"
)

func TestFirstCurrencyBecomesDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	usd, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "usd"})
	if err != nil {
		t.Fatalf("create usd: %v", err)
	}
	if !usd.IsDefault {
		t.Error("first currency should be default")
	}
	if usd.Code != "USD" {
		t.Errorf("code = %q, want USD", usd.Code)
	}

	eur, err := svc.AddOrEdit(&CurrencyIn{Name: "Euro", Code: "EUR"})
	if err != nil {
		t.Fatalf("create eur: %v", err)
	}
	if eur.IsDefault {
		t.Error("second currency must not steal the default flag")
	}
}

func TestDefaultSwapLeavesSingleDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	if _, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "USD"}); err != nil {
		t.Fatalf("create usd: %v", err)
	}
	eur, err := svc.AddOrEdit(&CurrencyIn{Name: "Euro", Code: "EUR"})
	if err != nil {
		t.Fatalf("create eur: %v", err)
	}

	makeDefault := true
	if _, err := svc.AddOrEdit(&CurrencyIn{ID: eur.ID, IsDefault: &makeDefault}); err != nil {
		t.Fatalf("promote eur: %v", err)
	}

	var defaults int64
	db.Model(&entity.Currency{}).Where("is_default = ?", true).Count(&defaults)
	if defaults != 1 {
		t.Fatalf("defaults = %d, want exactly 1", defaults)
	}

	var cur entity.Currency
	db.Where("is_default = ?", true).First(&cur)
	if cur.Code != "EUR" {
		t.Errorf("default = %q, want EUR", cur.Code)
	}
}

func TestDuplicateCodeRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	if _, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "USD"}); err != nil {
		t.Fatalf("create usd: %v", err)
	}
	if _, err := svc.AddOrEdit(&CurrencyIn{Name: "Dollar Again", Code: "usd"}); err == nil {
		t.Fatal("expected duplicate code error")
	}

	var total int64
	db.Model(&entity.Currency{}).Count(&total)
	if total != 1 {
		t.Errorf("currencies = %d, want 1 (no write on conflict)", total)
	}
}

func TestDeleteDefaultReassignsToLowestID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	usd, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "USD"})
	if err != nil {
		t.Fatalf("create usd: %v", err)
	}
	if _, err := svc.AddOrEdit(&CurrencyIn{Name: "Euro", Code: "EUR"}); err != nil {
		t.Fatalf("create eur: %v", err)
	}
	if _, err := svc.AddOrEdit(&CurrencyIn{Name: "Pound", Code: "GBP"}); err != nil {
		t.Fatalf("create gbp: %v", err)
	}

	if err := svc.Delete(usd.ID); err != nil {
		t.Fatalf("delete default: %v", err)
	}

	var cur entity.Currency
	if err := db.Where("is_default = ?", true).First(&cur).Error; err != nil {
		t.Fatalf("no default left: %v", err)
	}
	if cur.Code != "EUR" {
		t.Errorf("default = %q, want EUR (lowest remaining id)", cur.Code)
	}
}

func TestLastCurrencyCannotBeDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	usd, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "USD"})
	if err != nil {
		t.Fatalf("create usd: %v", err)
	}
	if err := svc.Delete(usd.ID); err == nil {
		t.Fatal("expected error deleting the last currency")
	}
}

func TestInvalidCurrencyPositionRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	_, err := svc.AddOrEdit(&CurrencyIn{Name: "US Dollar", Code: "USD", CurrencyPosition: "sideways"})
	if err == nil {
		t.Fatal("expected invalid position error")
	}
}
