package entity

import "time"

// Admins authenticate into a token namespace disjoint from users.
type Admin struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	Role      string    `gorm:"size:255" json:"role"`
	Image     string    `gorm:"size:500" json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
