package entity

import "gorm.io/gorm"

type ProductSpecification struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Name      string `gorm:"size:255" json:"name"`
}
