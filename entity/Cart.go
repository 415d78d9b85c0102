package entity

import "gorm.io/gorm"

// Cart is a per-user line item. Pricing is computed at read time from the
// product, the optional size and the attached addons; nothing is persisted.
type Cart struct {
	gorm.Model
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	User      User         `json:"-"`
	ProductID uint         `gorm:"not null;index" json:"product_id"`
	Product   *Product     `json:"product,omitempty"`
	SizeID    *uint        `json:"size_id"`
	Size      *ProductSize `gorm:"foreignKey:SizeID" json:"size,omitempty"`
	Quantity  int          `gorm:"not null;default:1" json:"quantity"`

	Addons []CartAddon `gorm:"constraint:OnDelete:CASCADE" json:"addons,omitempty"`
}
