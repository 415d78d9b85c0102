package entity

import "time"

type CartAddon struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"cart_id"`
	AddonID   uint      `gorm:"not null" json:"addon_id"`
	Addon     *Addon    `json:"addon,omitempty"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
