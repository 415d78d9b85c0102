package entity

import "gorm.io/gorm"

// Addon is an optional extra attachable to a product line, priced on its own.
type Addon struct {
	gorm.Model
	RestaurantID *uint   `json:"restaurant_id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Price        float64 `json:"price"`
	Status       string  `gorm:"size:20;default:active" json:"status"`
}
