package entity

import "gorm.io/gorm"

type OfferDealBanner struct {
	gorm.Model
	Image        string `gorm:"size:500" json:"image"`
	URL          string `gorm:"size:500" json:"url"`
	Status       string `gorm:"size:20;default:inactive" json:"status"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}
