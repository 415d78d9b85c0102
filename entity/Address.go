package entity

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	UserID       uint     `gorm:"index;not null" json:"user_id"`
	User         User     `json:"-"`
	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255" json:"email"`
	Phone        string   `gorm:"size:50" json:"phone"`
	Address      string   `gorm:"size:500;not null" json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	DeliveryType string   `gorm:"size:50;default:Home" json:"delivery_type"`
	IsDefault    bool     `gorm:"default:false" json:"is_default"`
}
