package entity

import "gorm.io/gorm"

type PaymentGateway struct {
	gorm.Model
	Gateway   string `gorm:"size:50;uniqueIndex;not null" json:"gateway"`
	Status    string `gorm:"size:20;default:inactive" json:"status"`
	Image     string `gorm:"size:500" json:"image"`
	Currency  string `gorm:"size:10;default:USD" json:"currency"`
	PublicKey string `gorm:"size:255" json:"public_key"`
	SecretKey string `gorm:"size:255" json:"-"`
}
