package entity

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Name             string     `gorm:"size:255" json:"name"`
	Code             string     `gorm:"size:100;uniqueIndex" json:"code"`
	ExpiredDate      *time.Time `json:"expired_date"`
	MinPurchasePrice float64    `gorm:"default:0" json:"min_purchase_price"`
	DiscountType     string     `gorm:"size:20;default:amount" json:"discount_type"` // amount|percentage
	Discount         float64    `json:"discount"`
	Status           string     `gorm:"size:20;default:active" json:"status"`
}
