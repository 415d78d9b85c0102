package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // nullable for social-login users

	SocialID   string `gorm:"size:255" json:"social_id,omitempty"`
	SocialType string `gorm:"size:50" json:"social_type,omitempty"` // google, facebook

	Status string `gorm:"size:20;default:active" json:"status"` // active|inactive

	Image       string     `gorm:"size:500" json:"image"`
	Phone       string     `json:"phone"`
	CountryCode string     `json:"country_code"`
	Address     string     `json:"address"`
	Lat         *float64   `json:"lat"`
	Lng         *float64   `json:"lng"`
	Dob         *time.Time `json:"dob"`

	Addresses    []Address     `json:"-"`
	CartItems    []Cart        `json:"-"`
	Favorites    []Favorite    `json:"-"`
	DeviceTokens []DeviceToken `json:"-"`
}
