package entity

import "gorm.io/gorm"

type PrivacyPolicyPage struct {
	gorm.Model
	Language    string `gorm:"size:10;uniqueIndex" json:"language"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}
