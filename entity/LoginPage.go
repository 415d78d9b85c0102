package entity

import "gorm.io/gorm"

type LoginPage struct {
	gorm.Model
	Language       string `gorm:"size:10;uniqueIndex" json:"language"`
	ImageOne       string `gorm:"size:255" json:"image_one"`
	TitleOne       string `gorm:"size:255" json:"title_one"`
	DescriptionOne string `gorm:"type:text" json:"description_one"`
	ImageTwo         string `gorm:"size:255" json:"image_two"`
	TitleTwo         string `gorm:"size:255" json:"title_two"`
	DescriptionTwo   string `gorm:"type:text" json:"description_two"`
	ImageThree       string `gorm:"size:255" json:"image_three"`
	TitleThree       string `gorm:"size:255" json:"title_three"`
	DescriptionThree string `gorm:"type:text" json:"description_three"`
}
