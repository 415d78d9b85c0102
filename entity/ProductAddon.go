package entity

import "gorm.io/gorm"

// ProductAddon joins a product to the addons it can be ordered with.
type ProductAddon struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	AddonID   uint   `gorm:"not null;index" json:"addon_id"`
	Addon     *Addon `json:"addon,omitempty"`
}
