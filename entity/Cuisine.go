package entity

import "gorm.io/gorm"

type Cuisine struct {
	gorm.Model
	Name   string `gorm:"size:255;not null" json:"name"`
	Slug   string `gorm:"size:255;uniqueIndex" json:"slug"`
	Image  string `gorm:"size:500" json:"image"`
	Status string `gorm:"size:50;default:active" json:"status"`

	Restaurants []Restaurant `gorm:"foreignKey:CuisineID" json:"-"`
}
