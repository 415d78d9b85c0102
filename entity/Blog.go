package entity

import "gorm.io/gorm"

type BlogCategory struct {
	gorm.Model
	Name             string `gorm:"size:255" json:"name"`
	Slug             string `gorm:"size:255;uniqueIndex" json:"slug"`
	VisibilityStatus string `gorm:"size:20;default:active" json:"visibility_status"`
	Blogs            []Blog `gorm:"foreignKey:CategoryID" json:"-"`
}

type Blog struct {
	gorm.Model
	CategoryID     uint          `json:"category_id"`
	Category       BlogCategory  `gorm:"foreignKey:CategoryID" json:"category"`
	Title          string        `gorm:"size:255" json:"title"`
	Slug           string        `gorm:"size:255;uniqueIndex" json:"slug"`
	Image          string        `gorm:"size:255" json:"image"`
	Description    string        `gorm:"type:text" json:"description"`
	Tags           string        `gorm:"size:255" json:"tags"`
	SeoTitle       string        `gorm:"size:255" json:"seo_title"`
	SeoDescription string        `gorm:"type:text" json:"seo_description"`
	Visibility     string        `gorm:"size:20;default:active" json:"visibility"`
	Comments       []BlogComment `gorm:"foreignKey:BlogID" json:"-"`
}

type BlogComment struct {
	gorm.Model
	BlogID  uint   `json:"blog_id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Comment string `gorm:"type:text" json:"comment"`
	Status  string `gorm:"size:20;default:pending" json:"status"` // pending|approved
}
