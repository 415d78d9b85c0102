package entity

import "gorm.io/gorm"

type City struct {
	gorm.Model
	Name  string `gorm:"size:255;not null" json:"name"`
	Image string `gorm:"size:500" json:"image"`

	Restaurants []Restaurant `gorm:"foreignKey:CityID" json:"-"`
}
