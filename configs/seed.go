package configs

import (
	"foodigo/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		zap.L().Info("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Name:     "Super Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
		Image:    "assets/others/default-img.jpg",
	}
	return db.Create(&admin).Error
}

// SeedDefaults inserts singleton rows the admin panel expects to exist.
func SeedDefaults() error {
	var settingCount int64
	db.Model(&entity.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		if err := db.Create(entity.DefaultSetting()).Error; err != nil {
			return err
		}
	}

	var currencyCount int64
	db.Model(&entity.Currency{}).Count(&currencyCount)
	if currencyCount == 0 {
		usd := entity.Currency{
			Name:             "US Dollar",
			Code:             "USD",
			CountryCode:      "US",
			Rate:             1,
			CurrencyPosition: "before_price",
			IsDefault:        true,
			Status:           "active",
		}
		if err := db.Create(&usd).Error; err != nil {
			return err
		}
	}

	return nil
}
