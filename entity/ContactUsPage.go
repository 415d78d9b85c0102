package entity

import "gorm.io/gorm"

type ContactUsPage struct {
	gorm.Model
	Language string `gorm:"size:10;uniqueIndex" json:"language"`
	Title    string `gorm:"size:255" json:"title"`
	Email    string `gorm:"size:255" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
}
