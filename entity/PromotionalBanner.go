package entity

import "gorm.io/gorm"

// PromotionalBanner rows are addressed by section_key so the storefront can
// place them without knowing ids.
type PromotionalBanner struct {
	gorm.Model
	SectionKey   string `gorm:"size:100;uniqueIndex" json:"section_key"`
	Title        string `gorm:"size:255" json:"title"`
	Image        string `gorm:"size:500" json:"image"`
	URL          string `gorm:"size:500" json:"url"`
	Status       string `gorm:"size:20;default:inactive" json:"status"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}
