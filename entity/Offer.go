package entity

import (
	"time"

	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	Title           string     `gorm:"size:255" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	OfferPercentage float64    `json:"offer_percentage"`
	EndTime         *time.Time `json:"end_time"`
	Status          string     `gorm:"size:20;default:active" json:"status"`

	OfferProducts []OfferProduct `gorm:"foreignKey:OfferID" json:"offer_products,omitempty"`
}
