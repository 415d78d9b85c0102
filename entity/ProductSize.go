package entity

import "gorm.io/gorm"

type ProductSize struct {
	gorm.Model
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	SizeName  string  `gorm:"size:100" json:"size_name"`
	Price     float64 `json:"price"`
}
