package entity

import "gorm.io/gorm"

// OfferProduct limits one product to one slot per offer.
type OfferProduct struct {
	gorm.Model
	OfferID   uint     `gorm:"not null;index" json:"offer_id"`
	Offer     *Offer   `json:"offer,omitempty"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `json:"product,omitempty"`
}
