package configs

import (
	"foodigo/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)

	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	db = database
}

// SetupDatabase runs AutoMigrate for every entity. Production schemas are
// managed by migration scripts; this is a dev convenience gated by
// AUTO_MIGRATE.
func SetupDatabase() error {
	return Migrate(db)
}

func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&entity.User{}, &entity.Admin{}, &entity.Deliveryman{},
		&entity.DeviceToken{}, &entity.Address{},
		&entity.City{}, &entity.Cuisine{}, &entity.FoodCategory{},
		&entity.Restaurant{},
		&entity.Product{}, &entity.ProductSize{}, &entity.ProductSpecification{},
		&entity.Addon{}, &entity.ProductAddon{},
		&entity.Cart{}, &entity.CartAddon{}, &entity.Favorite{},
		&entity.Coupon{}, &entity.Offer{}, &entity.OfferProduct{},
		&entity.OfferDealBanner{}, &entity.PromotionalBanner{},
		&entity.Currency{}, &entity.PaymentGateway{}, &entity.Setting{},
		&entity.ContactMessage{},
		&entity.SellerWithdrawMethod{}, &entity.SellerWithdrawRequest{},
		&entity.DeliveryWithdrawMethod{}, &entity.DeliveryWithdrawRequest{},
		&entity.BlogCategory{}, &entity.Blog{}, &entity.BlogComment{},
		&entity.AboutUsPage{}, &entity.TermsConditionsPage{},
		&entity.PrivacyPolicyPage{}, &entity.ContactUsPage{}, &entity.LoginPage{},
	)
}
