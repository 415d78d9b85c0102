package entity

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	CategoryID   uint          `gorm:"not null;index" json:"category_id"`
	FoodCategory *FoodCategory `gorm:"foreignKey:CategoryID" json:"food_category,omitempty"`
	RestaurantID uint          `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   *Restaurant   `json:"restaurant,omitempty"`

	Name             string `gorm:"size:255;not null" json:"name"`
	Slug             string `gorm:"size:255;uniqueIndex" json:"slug"`
	Image            string `gorm:"size:500" json:"image"`
	ShortDescription string `gorm:"type:text" json:"short_description"`

	Price float64 `gorm:"not null" json:"price"`
	// zero means no promotional price
	OfferPrice float64 `json:"offer_price"`

	IsFeatured bool   `gorm:"default:false" json:"is_featured"`
	Visibility string `gorm:"size:20;default:visible" json:"visibility"` // visible|hidden
	Status     string `gorm:"size:20;default:active" json:"status"`      // active|inactive

	Sizes          []ProductSize          `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
	Specifications []ProductSpecification `gorm:"foreignKey:ProductID" json:"specifications,omitempty"`
	Addons         []ProductAddon         `gorm:"foreignKey:ProductID" json:"addons,omitempty"`
	Favorites      []Favorite             `gorm:"foreignKey:ProductID" json:"-"`
}

// EffectivePrice prefers the promotional price when one is set.
func (p *Product) EffectivePrice() float64 {
	if p.OfferPrice > 0 {
		return p.OfferPrice
	}
	return p.Price
}
