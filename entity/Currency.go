package entity

import "gorm.io/gorm"

// At most one currency carries is_default at any time; the swap is enforced
// in the currency service, not by the schema.
type Currency struct {
	gorm.Model
	Name             string  `gorm:"size:120;not null" json:"name"`
	Code             string  `gorm:"size:10;uniqueIndex;not null" json:"code"`
	CountryCode      string  `gorm:"size:10" json:"country_code"`
	Icon             string  `gorm:"size:500" json:"icon"`
	Rate             float64 `gorm:"default:1" json:"rate"`
	CurrencyPosition string  `gorm:"size:32;default:before_price" json:"currency_position"`
	IsDefault        bool    `gorm:"default:false" json:"is_default"`
	Status           string  `gorm:"size:20;default:active" json:"status"`
}

var CurrencyPositions = []string{
	"before_price",
	"before_price_with_space",
	"after_price",
	"after_price_with_space",
}
